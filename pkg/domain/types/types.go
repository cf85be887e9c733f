package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubOwner         string
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	ContentLocation     string
	GCSBucket           string
	GCSObject           string
	RequestID           string
	TargetKey           string
)

const (
	// DefaultGitHubOwner is the account whose public repositories are listed
	// unless configured otherwise.
	DefaultGitHubOwner GitHubOwner = "LUBEN09"

	// DefaultContentLocation is the Markdown file rendered into the about section.
	DefaultContentLocation ContentLocation = "./content/about/index.md"

	// DefaultRepoPerPage is the page size requested from the repository listing.
	DefaultRepoPerPage = 6
)

const (
	TargetAboutContent TargetKey = "about-content"
	TargetProjectsList TargetKey = "projects-list"
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x GitHubOwner) String() string     { return string(x) }
func (x ContentLocation) String() string { return string(x) }
func (x GCSBucket) String() string       { return string(x) }
func (x GCSObject) String() string       { return string(x) }
func (x TargetKey) String() string       { return string(x) }
func (x RequestID) String() string       { return string(x) }

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
