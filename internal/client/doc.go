// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the application from its configuration: the
// dataset store, the settings file, the account status source and the
// services built on them. Commands use the assembled [App] and close it when
// they are done.
package client
