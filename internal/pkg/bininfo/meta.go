// This file's content is intended to be used with go's -ldflags option to inject version control information.
// DO NOT EDIT THE VARIABLE NAMES UNLESS YOU KNOW WHAT YOU ARE DOING.

package bininfo

const Name = "leetcode-report"

var (
	// Version is the SemVer version of the binary.
	// Git commit is appended, if available, separated by a plus sign [+].
	Version = "v0.0.0"

	// BuildTime is the time at which the binary was built. Lambda deployments
	// stamp this so CloudWatch logs can be matched to an artifact.
	BuildTime = "1970-01-01T00:00:00Z"
)

// Release is the release identifier reported to Sentry.
func Release() string {
	return Name + "@" + Version
}
