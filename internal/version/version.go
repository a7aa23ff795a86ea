package version

import (
	"errors"
	"fmt"
	"time"
)

// Заполняются через -ldflags при сборке:
//
//	-X sandbox-core/internal/version.BuildDate=2025-12-20
var (
	Version     = "dev"
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

var (
	ErrNoBuildDate = errors.New("build date is not set")
	ErrBeforeEpoch = errors.New("build date is before epoch")
)

// Номер сборки - число дней от этой даты
var buildEpoch = time.Date(2025, time.December, 4, 0, 0, 0, 0, time.UTC)

var started = time.Now()

// VersionInfo - метаданные сборки, отдаются на /version.
type VersionInfo struct {
	Version    string `json:"version"`
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate,omitempty"`
	Commit     string `json:"commit,omitempty"`
	Branch     string `json:"branch,omitempty"`
	CI         string `json:"ci,omitempty"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
	UptimeSec  int64  `json:"uptimeSec"`
}

func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, ErrNoBuildDate
	}
	date, err := time.ParseInLocation(time.DateOnly, BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("parse build date %q: %w", BuildDate, err)
	}
	if date.Before(buildEpoch) {
		return 0, fmt.Errorf("%w: %s", ErrBeforeEpoch, BuildDate)
	}
	// Обе даты в UTC, сутки всегда по 24 часа
	return int(date.Sub(buildEpoch) / (24 * time.Hour)), nil
}

func Info() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
		CI:        BuildCI,
		UptimeSec: int64(time.Since(started) / time.Second),
	}
	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.BuildID, info.Calculated = id, true
	return info
}

// String - строка для логов и флага -version
func String() string {
	info := Info()
	if !info.Calculated {
		return fmt.Sprintf("sandbox %s, build unknown (%s)", info.Version, info.Error)
	}

	commit, branch, ci := info.Commit, info.Branch, info.CI
	if commit == "" {
		commit = "unknown"
	}
	if branch == "" {
		branch = "unknown"
	}
	if ci == "" {
		ci = "local"
	}
	return fmt.Sprintf("sandbox %s, build %d (%s) commit[%s] branch[%s] ci[%s]",
		info.Version, info.BuildID, info.BuildDate, commit, branch, ci)
}
