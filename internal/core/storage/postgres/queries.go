package postgres

// SQL for report inputs, report jobs and seeding.

const (
	queryLoadObservations = `
		SELECT store_id, timestamp_utc, status
		FROM store_status
	`

	// TIME columns are cast to text: lib/pq decodes TIME into a time.Time on
	// year 0, which is awkward to carry around as a time of day.
	queryLoadBusinessHours = `
		SELECT store_id, day_of_week, start_time_local::text, end_time_local::text
		FROM business_hours
	`

	queryLoadTimezones = `
		SELECT store_id, timezone_str
		FROM store_timezones
	`

	queryCreateJob = `
		INSERT INTO report_jobs (report_id, status, created_at, updated_at)
		VALUES ($1, 'running', $2, $2)
	`

	// queryFinishJob only touches running jobs so that a job is finalized
	// exactly once; zero affected rows means unknown or already finished.
	queryFinishJob = `
		UPDATE report_jobs
		SET status = $2, report_data = $3, error = $4, updated_at = $5
		WHERE report_id = $1 AND status = 'running'
	`

	queryGetJob = `
		SELECT report_id, status, report_data, error, created_at, updated_at
		FROM report_jobs
		WHERE report_id = $1
	`

	queryListJobsByStatus = `
		SELECT report_id
		FROM report_jobs
		WHERE status = $1
		ORDER BY created_at ASC
	`

	queryInsertObservation = `
		INSERT INTO store_status (store_id, timestamp_utc, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (store_id, timestamp_utc) DO NOTHING
	`

	queryInsertBusinessHours = `
		INSERT INTO business_hours (store_id, day_of_week, start_time_local, end_time_local)
		VALUES ($1, $2, $3::time, $4::time)
		ON CONFLICT (store_id, day_of_week, start_time_local, end_time_local) DO NOTHING
	`

	queryInsertTimezone = `
		INSERT INTO store_timezones (store_id, timezone_str)
		VALUES ($1, $2)
		ON CONFLICT (store_id) DO NOTHING
	`

	querySchemaTables = `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_name = ANY($1)
	`
)

var requiredTables = []string{"store_status", "business_hours", "store_timezones", "report_jobs"}
