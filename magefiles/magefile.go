// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the frontdesk project using Mage.
//
// Usage:
//
//	mage build          Compile frontdesk binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run all tests quietly, allowing cached results
//	mage test:race      Run all tests with the race detector
//	mage vet            Run go vet
//	mage lint           Run go vet and golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install frontdesk to GOPATH/bin
//	mage serve gym      Build and serve the gym API on its default port
//	mage serve hospital Build and serve the hospital API on its default port
package main
