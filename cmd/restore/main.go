// Standalone restore tool. Run it when the local database is corrupted or
// missing and the application will not start:
//
//	restore -bucket MY_BUCKET -credentials key.json
//	restore -bucket MY_BUCKET -credentials key.json -backup hospital_backup_20250101_120000.db
//
// Without -backup it lists the available backups. Credentials may be a path
// to a service account key or the JSON itself; when omitted, application
// default credentials are used.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"clinicore/backup"
)

func main() {
	bucket := flag.String("bucket", "", "GCS bucket name")
	credentials := flag.String("credentials", "", "path to service account JSON, or the JSON itself")
	backupName := flag.String("backup", "", "backup filename to restore; lists backups when empty")
	dbPath := flag.String("db", "hospital.db", "path of the database file to restore")
	flag.Parse()

	if *bucket == "" {
		fmt.Fprintln(os.Stderr, "Error: -bucket is required")
		flag.Usage()
		os.Exit(2)
	}

	creds, err := loadCredentials(*credentials)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if *backupName == "" {
		coordinator := backup.NewCoordinator(nil)
		backups, err := coordinator.ListBackups(ctx, *bucket, creds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(backups) == 0 {
			fmt.Println("No backups found.")
			return
		}
		fmt.Println("Available backups:")
		for _, b := range backups {
			fmt.Printf("  - %s (%s, %d bytes)\n", b.Name, b.Updated.Format("2006-01-02 15:04"), b.Size)
		}
		fmt.Println("\nRun with -backup <filename> to restore.")
		return
	}

	if err := backup.RestoreFile(ctx, *bucket, creds, *backupName, *dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Restore complete: %s. You can now start the application.\n", *dbPath)
}

// loadCredentials accepts inline JSON, a file path, or nothing.
func loadCredentials(value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	if strings.HasPrefix(strings.TrimSpace(value), "{") {
		return []byte(value), nil
	}
	data, err := os.ReadFile(value)
	if err != nil {
		return nil, fmt.Errorf("credentials file not found: %s", value)
	}
	return data, nil
}
