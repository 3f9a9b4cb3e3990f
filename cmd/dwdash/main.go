//-------------------------------------------------------------------------
//
// dwdash - Data Warehouse Dashboard
//
// Copyright (c) 2025 - 2026, the dwdash authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package main

import "github.com/dwdash/dwdash/internal/cli"

func main() {
	cli.Execute()
}
