// Package models contains the GORM database models for the tariff tables
// and the flat row types the join queries scan into. Mapping between
// database models and domain entities is kept here so the domain package
// stays free of persistence concerns.
package models
