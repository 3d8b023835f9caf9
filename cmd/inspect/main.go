package main

import (
	"flag"
	"fmt"
	"job-chat/domain"
	"job-chat/infrastructure/storage"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "data/badger", "Path to badger DB")
	room := flag.String("room", "", "Only show one conversation (conversation_<a>_<b>)")
	limit := flag.Int("limit", 200, "Maximum rows to print")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Sent", "Room", "From", "To", "Kind", "Subject", "Read"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("msg:")
		for it.Seek(prefix); it.ValidForPrefix(prefix) && rows < *limit; it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				message, err := storage.DecodeMessage(v)
				if err != nil {
					fmt.Printf("Error decoding key %s: %v\n", string(item.Key()), err)
					return nil
				}
				if *room != "" && message.Room().String() != *room {
					return nil
				}
				read := color.Yellow.Render("unread")
				if message.IsRead {
					read = color.Green.Render("read")
				}
				table.Append([]string{
					strconv.FormatInt(message.ID, 10),
					message.SentAt.Format("2006-01-02 15:04:05"),
					message.Room().String(),
					message.SenderID,
					message.ReceiverID,
					string(message.Kind),
					domain.Preview(strings.ReplaceAll(message.Subject, "\n", " "), 40),
					read,
				})
				rows++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	color.Cyan.Printf("%d message(s)\n", rows)
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
