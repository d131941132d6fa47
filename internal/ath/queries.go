package ath

import "fmt"

const TableName = "play_type_weekly"

// BuildDrop returns a DROP TABLE IF EXISTS for the materialized rollup.
func BuildDrop(db string) string {
	return fmt.Sprintf(`DROP TABLE IF EXISTS %s.%s`, db, TableName)
}

// BuildCTAS returns the CTAS that rolls exported plays up to
// season/week/play-type counts. The plays table is the Glue table over
// the CSV exports; season is injected literally.
func BuildCTAS(db string, season int) string {
	return fmt.Sprintf(`
CREATE TABLE %s.%s
WITH (
  format = 'PARQUET',
  partitioned_by = ARRAY['season']
) AS
SELECT
  CAST(week AS INTEGER)                         AS week,
  LOWER(TRIM(play_type))                        AS play_type,
  COUNT(*)                                      AS plays,
  SUM(CASE WHEN touchdown THEN 1 ELSE 0 END)    AS touchdowns,
  SUM(CASE WHEN turnover  THEN 1 ELSE 0 END)    AS turnovers,
  SUM(CASE WHEN penalty   THEN 1 ELSE 0 END)    AS penalties,
  AVG(CAST(yards_gained AS DOUBLE))             AS avg_yards,
  %d                                            AS season
FROM %s.plays
WHERE season='%d'
  AND quarter IS NOT NULL
  AND time_remaining IS NOT NULL
GROUP BY CAST(week AS INTEGER), LOWER(TRIM(play_type))
`, db, TableName, season, db, season)
}

// Sanity/QA queries logged after the CTAS finishes.
func BuildCount(db string, season int) string {
	return fmt.Sprintf(`SELECT COUNT(*) AS n FROM %s.%s WHERE season=%d`, db, TableName, season)
}

func BuildPerWeekCounts(db string, season int) string {
	return fmt.Sprintf(`
SELECT week, SUM(plays) AS plays
FROM %s.%s
WHERE season=%d
GROUP BY week
ORDER BY week`, db, TableName, season)
}
