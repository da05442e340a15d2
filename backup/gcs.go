package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ObjectPrefix is the folder every backup object lives under in the bucket.
const ObjectPrefix = "hospital-backups"

const backupContentType = "application/x-sqlite3"

// BackupInfo describes one remote backup object.
type BackupInfo struct {
	Name    string    `json:"name"`
	Path    string    `json:"full_path"`
	Updated time.Time `json:"updated"`
	Size    int64     `json:"size"`
}

// BackupFilename derives the remote object name for a snapshot taken at ts.
// The timestamp sorts lexicographically, so repeated uploads never collide
// and listings come back in chronological order without parsing.
func BackupFilename(ts time.Time) string {
	return fmt.Sprintf("hospital_backup_%s.db", ts.Format("20060102_150405"))
}

// newClient builds a storage client from per-call service account JSON.
// Empty credentials fall back to application default credentials
// (GOOGLE_APPLICATION_CREDENTIALS). Credentials are never persisted.
func newClient(ctx context.Context, credentials []byte) (*storage.Client, error) {
	trimmed := bytes.TrimSpace(credentials)
	if len(trimmed) == 0 {
		return storage.NewClient(ctx)
	}
	if !json.Valid(trimmed) {
		return nil, errors.New("credentials are not valid JSON")
	}
	return storage.NewClient(ctx, option.WithCredentialsJSON(trimmed))
}

func objectPath(name string) string {
	if strings.HasPrefix(name, ObjectPrefix+"/") {
		return name
	}
	return ObjectPrefix + "/" + name
}

// uploadObject streams the local file to the bucket. The object only becomes
// visible when the writer is closed successfully, so a failed upload leaves
// no partial remote object behind.
func uploadObject(ctx context.Context, client *storage.Client, bucket, object, local string) error {
	f, err := os.Open(local)
	if err != nil {
		return err
	}
	defer f.Close()

	w := client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = backupContentType
	if _, err := io.Copy(w, f); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func listObjects(ctx context.Context, client *storage.Client, bucket string) ([]BackupInfo, error) {
	it := client.Bucket(bucket).Objects(ctx, &storage.Query{Prefix: ObjectPrefix + "/"})
	backups := []BackupInfo{}
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if !strings.HasSuffix(attrs.Name, ".db") && !strings.HasSuffix(attrs.Name, ".db.bak") {
			continue
		}
		name := attrs.Name[strings.LastIndex(attrs.Name, "/")+1:]
		backups = append(backups, BackupInfo{
			Name:    name,
			Path:    attrs.Name,
			Updated: attrs.Updated,
			Size:    attrs.Size,
		})
	}
	// Timestamped names sort chronologically; newest first for display.
	sort.Slice(backups, func(i, j int) bool { return backups[i].Name > backups[j].Name })
	return backups, nil
}

func fetchObject(ctx context.Context, client *storage.Client, bucket, object, dest string) error {
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return err
	}
	defer r.Close()

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dest)
		return err
	}
	return f.Close()
}
