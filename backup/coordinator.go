package backup

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"clinicore/store"
)

// State of the coordinator. Exactly one backup operation runs at a time.
type State string

const (
	StateIdle      State = "Idle"
	StateUploading State = "Uploading"
	StateListing   State = "Listing"
	StateRestoring State = "Restoring"
)

// DefaultTimeout bounds every remote storage call. Expiry surfaces as a
// backup/restore error; the caller decides whether to retry.
const DefaultTimeout = 60 * time.Second

// Coordinator snapshots the datastore to Google Cloud Storage and restores
// it. Credentials arrive per call as raw service account JSON and are
// forwarded opaquely to the storage client.
type Coordinator struct {
	store   *store.Store
	timeout time.Duration

	mu    sync.Mutex
	state State
}

func NewCoordinator(s *store.Store) *Coordinator {
	return &Coordinator{store: s, timeout: DefaultTimeout, state: StateIdle}
}

// SetTimeout overrides the remote call deadline.
func (c *Coordinator) SetTimeout(d time.Duration) { c.timeout = d }

// State reports the coordinator's current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Available reports whether the remote storage client is usable. The GCS
// client is compiled into the binary, so this is a capability probe for the
// gateway's status endpoint rather than a runtime check.
func (c *Coordinator) Available() bool { return true }

func (c *Coordinator) begin(next State, kind Kind) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle {
		return &Error{Kind: kind, Message: fmt.Sprintf("another backup operation is running (%s)", c.state)}
	}
	c.state = next
	return nil
}

func (c *Coordinator) done() {
	c.mu.Lock()
	c.state = StateIdle
	c.mu.Unlock()
}

// Upload snapshots the live database and uploads it under a timestamped
// name. Returns the remote object name. Nothing partial is left behind on
// failure: the temp snapshot is always removed and the remote object only
// materializes when the upload completes.
func (c *Coordinator) Upload(ctx context.Context, bucket string, credentials []byte) (string, error) {
	if err := c.begin(StateUploading, KindBackup); err != nil {
		return "", err
	}
	defer c.done()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	tmp := filepath.Join(os.TempDir(), "clinicore_snapshot_"+uuid.NewString()+".db")
	defer os.Remove(tmp)
	if err := c.store.Snapshot(tmp); err != nil {
		return "", backupErr("snapshot of live database failed", err)
	}

	client, err := newClient(ctx, credentials)
	if err != nil {
		return "", backupErr("could not create storage client", err)
	}
	defer client.Close()

	name := BackupFilename(time.Now())
	if err := uploadObject(ctx, client, bucket, objectPath(name), tmp); err != nil {
		return "", backupErr("upload to bucket "+bucket+" failed", err)
	}
	log.Printf("backup uploaded to gs://%s/%s", bucket, objectPath(name))
	return name, nil
}

// ListBackups returns the remote backups, newest first. Read-only; the local
// datastore is never touched.
func (c *Coordinator) ListBackups(ctx context.Context, bucket string, credentials []byte) ([]BackupInfo, error) {
	if err := c.begin(StateListing, KindBackup); err != nil {
		return nil, err
	}
	defer c.done()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := newClient(ctx, credentials)
	if err != nil {
		return nil, backupErr("could not create storage client", err)
	}
	defer client.Close()

	backups, err := listObjects(ctx, client, bucket)
	if err != nil {
		return nil, backupErr("listing bucket "+bucket+" failed", err)
	}
	return backups, nil
}

// Restore fetches the named backup, verifies it is a readable database and
// only then atomically replaces the live file. Any failure before the
// replacement leaves the live datastore untouched; the temp download is
// removed on every exit path. The replacement itself is the one window that
// excludes all other datastore access, and it is not abortable once begun.
func (c *Coordinator) Restore(ctx context.Context, bucket string, credentials []byte, backupName string) error {
	if err := c.begin(StateRestoring, KindRestore); err != nil {
		return err
	}
	defer c.done()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := newClient(ctx, credentials)
	if err != nil {
		return restoreErr("could not create storage client", err)
	}
	defer client.Close()

	tmp := c.store.Path() + ".restore_tmp"
	defer os.Remove(tmp)
	if err := fetchObject(ctx, client, bucket, objectPath(backupName), tmp); err != nil {
		return restoreErr("download of "+backupName+" failed", err)
	}
	if err := VerifySnapshot(tmp); err != nil {
		return restoreErr("downloaded backup is not a usable database", err)
	}
	if err := c.store.Restore(tmp); err != nil {
		return restoreErr("replacing the live database failed", err)
	}
	return nil
}

// RestoreFile is the standalone crash-recovery path: it restores dbPath from
// the named remote backup without a running Store, for when the application
// cannot start at all. The same download/verify/rename discipline applies.
func RestoreFile(ctx context.Context, bucket string, credentials []byte, backupName, dbPath string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	client, err := newClient(ctx, credentials)
	if err != nil {
		return restoreErr("could not create storage client", err)
	}
	defer client.Close()

	tmp := dbPath + ".restore_tmp"
	defer os.Remove(tmp)
	if err := fetchObject(ctx, client, bucket, objectPath(backupName), tmp); err != nil {
		return restoreErr("download of "+backupName+" failed", err)
	}
	if err := VerifySnapshot(tmp); err != nil {
		return restoreErr("downloaded backup is not a usable database", err)
	}
	if err := os.Rename(tmp, dbPath); err != nil {
		return restoreErr("replacing "+dbPath+" failed", err)
	}
	return nil
}
