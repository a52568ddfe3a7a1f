package cmd

type Config struct {
	HTTPPort            string
	RoutingServiceURL   string
	RoutingAPIKey       string
	DefaultStartAddress string
	SessionTTLMinutes   string
}
