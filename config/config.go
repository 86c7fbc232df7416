package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Port           string `envconfig:"PORT" default:"8002"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`

	// Order store: postgres | supabase | file
	OrderStore string `envconfig:"ORDER_STORE" default:"postgres"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     uint   `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"storefront"`

	SupabaseURL        string `envconfig:"SUPABASE_URL"`
	SupabaseServiceKey string `envconfig:"SUPABASE_SERVICE_ROLE_KEY"`

	OrdersFile string `envconfig:"ORDERS_FILE" default:"data/orders.json"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	VenueTimezone string   `envconfig:"VENUE_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	VenueKeywords []string `envconfig:"VENUE_KEYWORDS" default:"Venue,Hall,Room,Booking"`

	SlotOpenHour  int    `envconfig:"SLOT_OPEN_HOUR" default:"9"`
	SlotCloseHour int    `envconfig:"SLOT_CLOSE_HOUR" default:"22"`
	SlotPrice     string `envconfig:"SLOT_PRICE" default:"1500"`

	BufferMinutes  int           `envconfig:"BOOKING_BUFFER_MINUTES" default:"120"`
	HoldTTL        time.Duration `envconfig:"HOLD_TTL" default:"15m"`
	HoldRetention  time.Duration `envconfig:"HOLD_RETENTION" default:"168h"`
	HoldExpiryCron string        `envconfig:"HOLD_EXPIRY_CRON" default:"@every 1m"`

	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string `envconfig:"SMTP_FROM" default:"Storefront <no-reply@storefront.local>"`

	SeedDemo bool `envconfig:"SEED_DEMO" default:"false"`
}

// Load reads .env (if present) and then the process environment.
func Load() (App, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

func (a App) Origins() string {
	return strings.ReplaceAll(a.AllowedOrigins, " ", "")
}

// Location returns the venue's time zone. Falls back to a fixed ICT zone when
// the tz database is unavailable in the container.
func (a App) Location() *time.Location {
	loc, err := time.LoadLocation(a.VenueTimezone)
	if err != nil {
		log.Printf("Unknown VENUE_TIMEZONE %q, falling back to ICT: %v", a.VenueTimezone, err)
		return time.FixedZone("ICT", 7*3600)
	}
	return loc
}
