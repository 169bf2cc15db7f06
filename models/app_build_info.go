// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotAvailable stands in for build metadata the linker did not inject.
const NotAvailable = "N/A"

// AppBuildInfo is the build metadata reported by GET /api/version.
// Values usually come from -ldflags at build time; the zero value means none
// were injected.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// HasVersion reports whether a real version was injected.
func (a AppBuildInfo) HasVersion() bool {
	return a.buildVersion != "" && a.buildVersion != NotAvailable
}

// WithVersion returns a copy with the version replaced.
func (a AppBuildInfo) WithVersion(version string) AppBuildInfo {
	a.buildVersion = version
	return a
}

// OrNotAvailable returns a copy in which every empty field reads
// [NotAvailable].
func (a AppBuildInfo) OrNotAvailable() AppBuildInfo {
	for _, field := range []*string{&a.buildVersion, &a.buildDate, &a.buildCommit} {
		if *field == "" {
			*field = NotAvailable
		}
	}
	return a
}
