package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/sansecio/bmgo/boyermoore"
	"github.com/sansecio/bmgo/cmd/internal"
)

var (
	dsn     = flag.String("dsn", "root:root@tcp(127.0.0.1:3306)/corpus", "MySQL DSN")
	query   = flag.String("query", "SELECT id, body FROM documents", "query returning an id and a body column")
	pattern = flag.String("pattern", "", "pattern to search each body for")
)

func main() {
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintf(os.Stderr, "Usage: corpus-diff -pattern <pattern> [-dsn <dsn>] [-query <query>]\n")
		os.Exit(1)
	}

	m := boyermoore.CompileString(*pattern)
	ref := []byte(*pattern)

	db, err := sql.Open("mysql", *dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to MySQL: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	rows, err := db.Query(*query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying database: %v\n", err)
		os.Exit(1)
	}
	defer rows.Close()

	var rowCount, matchedRows, disagreed int
	var bmTime, refTime time.Duration

	for rows.Next() {
		rowCount++
		if rowCount%100000 == 0 {
			fmt.Fprintf(os.Stderr, "Reading rows: %d...\n", rowCount)
		}

		var id int64
		var body []byte
		if err := rows.Scan(&id, &body); err != nil {
			continue
		}

		start := time.Now()
		got := m.FindAll(body)
		bmTime += time.Since(start)

		start = time.Now()
		want := internal.RefFindAll(body, ref)
		refTime += time.Since(start)

		if len(got) > 0 {
			matchedRows++
		}
		if !slices.Equal(got, want) {
			disagreed++
			fmt.Printf("row %d: boyermoore %v, reference %v\n", id, got, want)
		}
	}

	if err := rows.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading rows: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("rows scanned: %d\n", rowCount)
	fmt.Printf("rows with matches: %d\n", matchedRows)
	fmt.Printf("rows disagreeing: %d\n", disagreed)
	fmt.Printf("boyermoore time: %v\n", bmTime)
	fmt.Printf("reference time: %v\n", refTime)

	if disagreed > 0 {
		os.Exit(1)
	}
}
