package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AmqpURL is optional. When empty events stay in-process.
	AmqpURL      string
	AmqpExchange string

	// ReminderCron is a six-field cron expression for the delivery
	// reminder scan. ReminderWindowHours is how far ahead the scan looks.
	ReminderCron        string
	ReminderWindowHours int
}
