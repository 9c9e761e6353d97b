// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPHandler is returned by NewHandlers when no HTTP address is
// configured. The REST API is the product; a health endpoint alone is a
// fatal misconfiguration.
var errNoHTTPHandler = errors.New("no HTTP address is configured")
