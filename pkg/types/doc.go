// Package types defines the entity types, the Table interface, configuration,
// and standard errors shared by the frontdesk storage backend, HTTP API and CLI.
//
// Two variants share these definitions: the gym variant (members, trainers,
// memberships, attendance) and the hospital variant (patients, doctors,
// diseases, medical history, check-ins).
package types
