package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexander1616/hashtables"
	"github.com/alexander1616/hashtables/crt"
	"github.com/alexander1616/hashtables/internal/conf"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run - Walks a table of conf.DefaultTableSize buckets through insert, lookup and delete, writing the report to w
func run(w io.Writer) (err error) {
	ht, _, err := hashtables.NewHashTable(conf.DefaultTableSize, nil)
	if err != nil {
		return
	}

	if err = ht.Print(w); err != nil {
		return
	}

	for _, r := range []*hashtables.Record{
		{Key: "Alex", Age: 1},
		{Key: "Mikey", Age: 2},
		{Key: "Toby", Age: 3},
		{Key: "Tiger", Age: 4},
		{Key: "Mikey", Age: 20},
	} {
		if err = ht.Insert(r); err != nil {
			return
		}
	}

	if err = ht.Print(w); err != nil {
		return
	}

	for _, key := range []string{"Godzilla", "Alex"} {
		if err = report(w, ht, key); err != nil {
			return
		}
	}

	if _, err = ht.Delete("Alex"); err != nil {
		return
	}

	if err = report(w, ht, "Alex"); err != nil {
		return
	}

	if err = ht.Insert(&hashtables.Record{Key: "Godzilla", Age: 5}); err != nil {
		return
	}

	if err = ht.Print(w); err != nil {
		return
	}

	for _, key := range []string{"Alex", "Mikey", "Toby", "Tiger", "Godzilla"} {
		if _, err = fmt.Fprintf(w, "%s => %d\n", key, ht.Hash(key)); err != nil {
			return
		}
	}

	return
}

// report - Looks up key and writes whether it was found
func report(w io.Writer, ht *hashtables.HashTable, key string) (err error) {
	record, err := ht.Lookup(key)
	if errors.Is(err, crt.NoRecordFound{}) {
		_, err = fmt.Fprintln(w, "Not found!")
		return
	}
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(w, "Found %s, age is %d.\n", record.Key, record.Age)

	return
}
