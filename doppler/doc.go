// Package doppler loads configuration variables from a Doppler-style
// configuration service when a process starts.
//
// [New] fetches the variables for one environment and pipeline, retrying
// transient failures up to a bounded number of times. When the service
// cannot be reached the client falls back to a dotenv backup file written
// after the last successful fetch. By default every fetched variable is
// also injected into the process environment.
//
//	client, err := doppler.New(ctx, doppler.Config{
//		APIKey:         os.Getenv("DOPPLER_API_KEY"),
//		Environment:    "production",
//		Pipeline:       "31",
//		BackupFilePath: "./backup.env",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	dbURL, _ := client.Get("DATABASE_URL")
//
// Unset fields of [Config] are read from the process environment
// (DOPPLER_API_KEY, DOPPLER_PIPELINE, DOPPLER_ENVIRONMENT, DOPPLER_HOST, ...)
// and then from a local .env file.
package doppler
