// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the keyplace command line application.
//
// Each subcommand maps onto one client service call: signup and login
// obtain an agent key, add-questions and add-codes register recovery
// records, recover-questions and recover-code get the key back, and sign
// and verify use it. Secrets (passphrases, answers) are read from the
// input stream, never from flags, so they stay out of shell history.
package client
