// Command dbinspect dumps the documents stored in a Curator database.
// Useful for debugging a data directory without starting the server.
package main

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		dbPath = filepath.Join(home, "Curator", "data", "db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(val []byte) error {
				fmt.Printf("%s:\n", key)
				pretty, err := formatJSON(val)
				if err != nil {
					fmt.Printf("  (not JSON, %d bytes)\n", len(val))
					return nil
				}
				fmt.Println(pretty)
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Println()
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to read database: %v", err)
	}
}

func formatJSON(val []byte) (string, error) {
	out, err := json.Marshal(jsontext.Value(val), jsontext.WithIndent("  "))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
