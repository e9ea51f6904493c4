package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payroll"
)

const referenceDateLayout = "2006-01-02"

// RosterSource は名簿の取得元です。
type RosterSource string

const (
	RosterSourceFile     RosterSource = "file"
	RosterSourcePostgres RosterSource = "postgres"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Payroll  PayrollConfig  `yaml:"payroll"`
	Roster   RosterConfig   `yaml:"roster"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。roster.source が postgres の場合のみ必須です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// PayrollConfig は給与計算の固定値と評価基準日の設定です。
type PayrollConfig struct {
	DeductionRateRaw string `yaml:"deduction_rate"`
	ARLRateRaw       string `yaml:"arl_rate"`
	FoodAllowanceRaw string `yaml:"food_allowance"`
	ReferenceDateRaw string `yaml:"reference_date"`

	DeductionRate decimal.Decimal     `yaml:"-"`
	ARLRate       decimal.NullDecimal `yaml:"-"`
	FoodAllowance decimal.Decimal     `yaml:"-"`
	// ReferenceDate がゼロ値の場合はシステム時刻を使用します。
	ReferenceDate time.Time `yaml:"-"`
}

// RosterConfig は名簿の取得元に関する設定です。
type RosterConfig struct {
	Source RosterSource `yaml:"source"`
	Path   string       `yaml:"path"`
	Format string       `yaml:"format"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.Payroll.validateAndNormalize(); err != nil {
		return err
	}

	if err := c.Roster.validateAndNormalize(); err != nil {
		return err
	}

	if c.Roster.Source == RosterSourcePostgres {
		db := &c.Database
		if err := db.validateAndNormalize(); err != nil {
			return err
		}
	}

	return nil
}

func (p *PayrollConfig) validateAndNormalize() error {
	rate, err := parseDecimalDefault(p.DeductionRateRaw, "0.04")
	if err != nil {
		return fmt.Errorf("config: payroll.deduction_rate: %w", err)
	}
	if rate.IsNegative() {
		return fmt.Errorf("config: payroll.deduction_rate must not be negative")
	}
	p.DeductionRate = rate

	if strings.TrimSpace(p.ARLRateRaw) == "" {
		p.ARLRate = decimal.NullDecimal{}
	} else {
		arl, err := decimal.NewFromString(strings.TrimSpace(p.ARLRateRaw))
		if err != nil {
			return fmt.Errorf("config: payroll.arl_rate: %w", err)
		}
		if arl.IsNegative() {
			return fmt.Errorf("config: payroll.arl_rate must not be negative")
		}
		p.ARLRate = decimal.NewNullDecimal(arl)
	}

	allowance, err := parseDecimalDefault(p.FoodAllowanceRaw, "1000000")
	if err != nil {
		return fmt.Errorf("config: payroll.food_allowance: %w", err)
	}
	if allowance.IsNegative() {
		return fmt.Errorf("config: payroll.food_allowance must not be negative")
	}
	p.FoodAllowance = allowance

	if raw := strings.TrimSpace(p.ReferenceDateRaw); raw != "" {
		ref, err := time.Parse(referenceDateLayout, raw)
		if err != nil {
			return fmt.Errorf("config: payroll.reference_date: %w", err)
		}
		p.ReferenceDate = ref
	}

	return nil
}

// Rates は給与計算で使用する固定値を返します。
func (p PayrollConfig) Rates() payroll.Rates {
	return payroll.Rates{
		DeductionRate: p.DeductionRate,
		ARLRate:       p.ARLRate,
		FoodAllowance: p.FoodAllowance,
	}
}

// Clock は reference_date が設定されていれば固定時刻、未設定なら nil (システム時刻) を返します。
func (p PayrollConfig) Clock() payroll.Clock {
	if p.ReferenceDate.IsZero() {
		return nil
	}
	return payroll.FixedClock{At: p.ReferenceDate}
}

func (r *RosterConfig) validateAndNormalize() error {
	if r.Source == "" {
		r.Source = RosterSourceFile
	}

	switch r.Source {
	case RosterSourceFile:
		if strings.TrimSpace(r.Path) == "" {
			return fmt.Errorf("config: roster.path must be set when roster.source is file")
		}
	case RosterSourcePostgres:
	default:
		return fmt.Errorf("config: roster.source %q is not supported", r.Source)
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

func parseDecimalDefault(raw, fallback string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = fallback
	}
	return decimal.NewFromString(trimmed)
}

// DSN は pgx 用の接続文字列を返します。認証情報はエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + strconv.Itoa(d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}
