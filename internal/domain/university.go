// Package domain provides domain models used across the application.
package domain

import "time"

// University represents an institution with contact and ranking metadata.
// One row per institution; re-scrapes overwrite via upsert.
type University struct {
	ID              string    `db:"university_id"               json:"university_id"`
	Name            string    `db:"university_name"             json:"university_name"`
	City            string    `db:"university_city"             json:"university_city"`
	Region          string    `db:"university_region"           json:"university_region"`
	Website         string    `db:"university_website"          json:"university_website"`
	Email           string    `db:"university_email"            json:"university_email,omitempty"`
	Phone           string    `db:"university_phone"            json:"university_phone,omitempty"`
	RankingNational int       `db:"university_ranking_national" json:"university_ranking_national,omitempty"`
	RankingWorld    int       `db:"university_ranking_world"    json:"university_ranking_world,omitempty"`
	LastUpdated     time.Time `db:"last_updated"                json:"last_updated"`
}
