// Package schema holds the relational tables of the dashboard.
//
// Statements are idempotent and run on every start; column changes belong in
// a new statement appended to TableDefinitions.
package schema

// TableDefinitions contains all the SQL statements to create the database tables
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id BIGSERIAL PRIMARY KEY,
		referenceid VARCHAR(64) NOT NULL,
		manager VARCHAR(64) NOT NULL DEFAULT '',
		tsm VARCHAR(64) NOT NULL DEFAULT '',
		companyname VARCHAR(255) NOT NULL,
		contactperson VARCHAR(255) NOT NULL DEFAULT '',
		contactnumber VARCHAR(64) NOT NULL DEFAULT '',
		emailaddress VARCHAR(255) NOT NULL DEFAULT '',
		typeclient VARCHAR(64) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		area VARCHAR(128) NOT NULL DEFAULT '',
		status VARCHAR(32) NOT NULL DEFAULT 'Active',
		date_created TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		date_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS progress (
		id BIGSERIAL PRIMARY KEY,
		referenceid VARCHAR(64) NOT NULL,
		manager VARCHAR(64) NOT NULL DEFAULT '',
		tsm VARCHAR(64) NOT NULL DEFAULT '',
		agentname VARCHAR(255) NOT NULL DEFAULT '',
		companyname VARCHAR(255) NOT NULL DEFAULT '',
		contactperson VARCHAR(255) NOT NULL DEFAULT '',
		typeclient VARCHAR(64) NOT NULL DEFAULT '',
		typeactivity VARCHAR(64) NOT NULL DEFAULT '',
		callstatus VARCHAR(64) NOT NULL DEFAULT '',
		typecall VARCHAR(64) NOT NULL DEFAULT '',
		quotationnumber VARCHAR(64) NOT NULL DEFAULT '',
		quotationamount NUMERIC(14,2) NOT NULL DEFAULT 0,
		sonumber VARCHAR(64) NOT NULL DEFAULT '',
		soamount NUMERIC(14,2) NOT NULL DEFAULT 0,
		actualsales NUMERIC(14,2) NOT NULL DEFAULT 0,
		remarks TEXT NOT NULL DEFAULT '',
		status VARCHAR(32) NOT NULL DEFAULT '',
		startdate TIMESTAMPTZ,
		enddate TIMESTAMPTZ,
		date_created TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id BIGSERIAL PRIMARY KEY,
		referenceid VARCHAR(64) NOT NULL DEFAULT '',
		companyname VARCHAR(255) NOT NULL,
		contactname VARCHAR(255) NOT NULL DEFAULT '',
		contactnumber VARCHAR(64) NOT NULL DEFAULT '',
		emailaddress VARCHAR(255) NOT NULL DEFAULT '',
		channel VARCHAR(64) NOT NULL DEFAULT '',
		inquiry TEXT NOT NULL DEFAULT '',
		status VARCHAR(32) NOT NULL DEFAULT 'Pending',
		wrapup TEXT NOT NULL DEFAULT '',
		date_created TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		date_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS notification (
		id BIGSERIAL PRIMARY KEY,
		referenceid VARCHAR(64) NOT NULL,
		type VARCHAR(64) NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'Unread',
		date_created TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS email (
		id BIGSERIAL PRIMARY KEY,
		referenceid VARCHAR(64) NOT NULL,
		sender VARCHAR(255) NOT NULL,
		recipient VARCHAR(255) NOT NULL,
		subject VARCHAR(998) NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		status VARCHAR(16) NOT NULL,
		date_created TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS notes (
		id BIGSERIAL PRIMARY KEY,
		referenceid VARCHAR(64) NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date_created TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		date_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS links (
		id BIGSERIAL PRIMARY KEY,
		referenceid VARCHAR(64) NOT NULL,
		title VARCHAR(255) NOT NULL,
		url TEXT NOT NULL,
		date_created TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		date_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tutorials (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		link TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		category VARCHAR(128) NOT NULL DEFAULT '',
		date_created TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		date_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS faqs (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date_created TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		date_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_accounts_referenceid ON accounts (referenceid, status)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_referenceid_created ON progress (referenceid, date_created DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_inquiries_status ON inquiries (status, date_created DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_notification_referenceid ON notification (referenceid, status)`,
	`CREATE INDEX IF NOT EXISTS idx_email_referenceid ON email (referenceid, date_created DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_referenceid ON notes (referenceid)`,
	`CREATE INDEX IF NOT EXISTS idx_links_referenceid ON links (referenceid)`,
}

// TableNames lists the tables created by TableDefinitions, in creation order
var TableNames = []string{
	"accounts",
	"progress",
	"inquiries",
	"notification",
	"email",
	"notes",
	"links",
	"tutorials",
	"faqs",
}
