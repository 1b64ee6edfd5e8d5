// Package tariff contains the domain model for the Japanese export/import
// statistical code tables: the customs classification hierarchy (section,
// chapter, heading, subheading), the nine-digit statistical code lines,
// the flattened lookup records served by the API, and the contracts of the
// services and repositories operating on them.
package tariff
