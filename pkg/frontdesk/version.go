// Package frontdesk holds build metadata for the frontdesk module.
package frontdesk

// Version is the release version printed by "frontdesk version".
const Version = "0.1.0"
