package store

// Alert queries (Postgres).
const (
	queryInsertAlert = `
		INSERT INTO alerts (
			origin, destination, departure_date, return_date, trip_type,
			price_threshold, is_active, email, phone,
			email_verified, phone_verified, email_token, phone_code_hash
		) VALUES (
			@origin, @destination, @departure_date, @return_date, @trip_type,
			@price_threshold, @is_active, NULLIF(@email, ''), NULLIF(@phone, ''),
			@email_verified, @phone_verified, NULLIF(@email_token, ''), NULLIF(@phone_code_hash, '')
		)
		RETURNING id, created_at`

	queryGetAlert = baseAlertsSelect + `
		WHERE id = $1`

	queryGetAlertByEmailToken = baseAlertsSelect + `
		WHERE email_token = $1`

	queryListEligibleAlerts = baseAlertsSelect + `
		WHERE is_active AND (email_verified OR phone_verified)
		ORDER BY created_at ASC, id ASC`

	queryUpdateLastChecked = `
		UPDATE alerts SET last_checked = $2 WHERE id = $1`

	queryUpdatePriceThreshold = `
		UPDATE alerts SET price_threshold = $2 WHERE id = $1`

	queryDeleteAlert = `
		DELETE FROM alerts WHERE id = $1`

	querySetEmailVerified = `
		UPDATE alerts SET email_verified = true, email_token = NULL WHERE id = $1`

	querySetPhoneVerified = `
		UPDATE alerts SET phone_verified = true, phone_code_hash = NULL WHERE id = $1`

	queryRecordPhoneCodeAttempt = `
		UPDATE alerts SET phone_code_attempts = phone_code_attempts + 1
		WHERE id = $1 AND phone_code_hash IS NOT NULL
		RETURNING phone_code_attempts`

	queryClearPhoneCode = `
		UPDATE alerts SET phone_code_hash = NULL WHERE id = $1`

	querySetActive = `
		UPDATE alerts SET is_active = $2 WHERE id = $1`

	queryCountAlerts = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_active),
			COUNT(*) FILTER (WHERE is_active AND (email_verified OR phone_verified))
		FROM alerts`
)

// Pass run queries (Postgres).
const (
	queryInsertPassRun = `
		INSERT INTO pass_runs (started_at)
		VALUES ($1)
		RETURNING id`

	queryCompletePassRun = `
		UPDATE pass_runs SET
			completed_at = now(),
			status       = @status,
			error_text   = NULLIF(@error_text, ''),
			eligible     = @eligible,
			expired      = @expired,
			notified     = @notified,
			no_change    = @no_change,
			skipped      = @skipped
		WHERE id = @id`

	queryListPassRuns = `
		SELECT id, started_at, completed_at, status, COALESCE(error_text, ''),
			eligible, expired, notified, no_change, skipped
		FROM pass_runs
		ORDER BY started_at DESC
		LIMIT $1`

	queryMarkStalePassRunsInterrupted = `
		UPDATE pass_runs SET
			status       = 'interrupted',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldPassRuns = `
		DELETE FROM pass_runs WHERE started_at < now() - interval '30 days'`
)
