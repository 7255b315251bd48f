// Package lookup fetches repository summaries from a GitHub-compatible REST
// API.
//
// [Client.Lookup] issues GET {base}repos/{identifier} with the identifier
// appended verbatim, sends no credentials, and converts the response into a
// validated [model.RepositorySummary]. Every failure, whether transport,
// non-2xx status, undecodable body or a body missing required fields, is
// returned as a [*LookupError].
package lookup
