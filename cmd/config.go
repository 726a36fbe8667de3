package cmd

type Config struct {
	HTTPPort string
	DBPath   string
}
