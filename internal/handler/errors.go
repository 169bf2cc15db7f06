// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no HTTP address, so no transport handler can be
// initialized. The application treats this as fatal at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
