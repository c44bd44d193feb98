package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/suparena/querystore"
	"github.com/suparena/querystore/registry"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	fileFlag    = flag.String("file", "collections.yaml", "Path to the collection map file")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := querystore.GetVersionInfo()
		fmt.Printf("QueryStore collmap version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	m, err := registry.LoadCollectionMapFile(*fileFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collmap: %v\n", err)
		os.Exit(1)
	}

	types := make([]string, 0, len(m))
	for t := range m {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Printf("%s: %d entries\n", *fileFlag, len(m))
	for _, t := range types {
		fmt.Printf("  %-40s -> %s\n", t, m[t])
	}
}
