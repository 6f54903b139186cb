// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPAddress is returned by NewServer when the configuration carries
// no HTTP listen address. This is treated as a fatal misconfiguration and
// causes the application to fail at startup.
var errNoHTTPAddress = errors.New("no HTTP address configured")
