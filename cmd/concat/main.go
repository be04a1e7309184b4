package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var dir string
	flag.StringVar(&dir, "dir", ".", "directory to walk")
	var exts string
	flag.StringVar(&exts, "ext", ".sql", "comma-separated list of file extensions to include")
	var out string
	flag.StringVar(&out, "out", "", "output file (default stdout)")
	flag.Parse()

	usage := `
Concatenate matching files under a directory into one output, each prefixed
with a separator naming its source path. Used to bundle the bootstrap SQL
into a single reviewable file.

Usage:

concat [-h] [-dir DIR] [-ext .sql,.txt] [-out FILE]

example
  concat -dir data/initdb -ext .sql -out all.sql
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	include := map[string]bool{}
	for _, e := range strings.Split(exts, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		include[e] = true
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if include[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to walk %s: %v", dir, err)
	}
	sort.Strings(files)

	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", out, err)
		}
		defer f.Close()
		w = f
	}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", path, err)
		}
		fmt.Fprintf(w, "-- ==== %s ====\n", path)
		w.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
}
