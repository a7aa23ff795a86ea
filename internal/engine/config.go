package engine

import (
	"errors"
	"fmt"
	"sandbox-core/internal/domain"
	"sandbox-core/pkg/utils"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix - префикс переменных окружения (SANDBOX_TICK_RATE и т.д.)
const EnvPrefix = "SANDBOX"

var ErrInvalidConfig = errors.New("invalid config")

type TickConfig struct {
	// Rate - кадров в секунду для основного цикла хоста
	Rate int `mapstructure:"rate"`
	// FixedStep - шаг физики (FixedTick)
	FixedStep time.Duration `mapstructure:"fixedStep"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ServerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

type StorageConfig struct {
	// Driver: memory или sqlite
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

type ReplayConfig struct {
	Dir    string `mapstructure:"dir"`
	Record bool   `mapstructure:"record"`
}

type WeaponsConfig struct {
	AimSpreadMultiplier float64              `mapstructure:"aimSpreadMultiplier"`
	Pistol              domain.WeaponProfile `mapstructure:"pistol"`
	Rifle               domain.WeaponProfile `mapstructure:"rifle"`
}

type PedestrianConfig struct {
	Count                     int     `mapstructure:"count"`
	MaxHealth                 float64 `mapstructure:"maxHealth"`
	domain.NavigationSettings `mapstructure:",squash"`
}

type VehicleConfig struct {
	domain.VehicleProfile `mapstructure:",squash"`
	Mass                  float64 `mapstructure:"mass"`
	MaxHealth             float64 `mapstructure:"maxHealth"`
	WaypointRadius        float64 `mapstructure:"waypointRadius"`
}

type PlayerConfig struct {
	domain.LocomotionComponent `mapstructure:",squash"`
	MaxHealth                  float64 `mapstructure:"maxHealth"`
}

// Config хранит параметры запуска симуляции
type Config struct {
	// Seed - мастер-зерно. От него зависят патрули и разброс выстрелов.
	Seed int64 `mapstructure:"-"`

	Tick       TickConfig       `mapstructure:"tick"`
	Log        LogConfig        `mapstructure:"log"`
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Replay     ReplayConfig     `mapstructure:"replay"`
	Weapons    WeaponsConfig    `mapstructure:"weapons"`
	Pedestrian PedestrianConfig `mapstructure:"pedestrian"`
	Vehicle    VehicleConfig    `mapstructure:"vehicle"`
	Player     PlayerConfig     `mapstructure:"player"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		// Значения по умолчанию всегда валидны
		panic(err)
	}
	return cfg
}

// LoadConfig читает файл (если путь задан) поверх значений по умолчанию.
// Переменные окружения SANDBOX_* имеют приоритет над файлом.
func LoadConfig(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", "")

	v.SetDefault("tick.rate", 60)
	v.SetDefault("tick.fixedStep", "20ms")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("server.enabled", true)
	v.SetDefault("server.addr", ":8080")

	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.path", "./sandbox.db")

	v.SetDefault("replay.dir", "./replays")
	v.SetDefault("replay.record", false)

	v.SetDefault("weapons.aimSpreadMultiplier", domain.DefaultAimSpreadMultiplier)
	setWeaponDefaults(v, "weapons.pistol", domain.PistolProfile())
	setWeaponDefaults(v, "weapons.rifle", domain.RifleProfile())

	nav := domain.DefaultNavigationSettings()
	v.SetDefault("pedestrian.count", 6)
	v.SetDefault("pedestrian.maxHealth", domain.DefaultMaxHealth)
	v.SetDefault("pedestrian.baseSpeed", nav.BaseSpeed)
	v.SetDefault("pedestrian.fleeSpeedMultiplier", nav.FleeSpeedMultiplier)
	v.SetDefault("pedestrian.fleeTriggerRadius", nav.FleeTriggerRadius)
	v.SetDefault("pedestrian.fleeDistance", nav.FleeDistance)
	v.SetDefault("pedestrian.arrivalRadius", nav.ArrivalRadius)
	v.SetDefault("pedestrian.turnRate", nav.TurnRate)

	vp := domain.DefaultVehicleProfile()
	v.SetDefault("vehicle.acceleration", vp.Acceleration)
	v.SetDefault("vehicle.brakeForce", vp.BrakeForce)
	v.SetDefault("vehicle.turnTorque", vp.TurnTorque)
	v.SetDefault("vehicle.aiAcceleration", vp.AIAcceleration)
	v.SetDefault("vehicle.aiTurnTorque", vp.AITurnTorque)
	v.SetDefault("vehicle.impactLow", vp.ImpactLow)
	v.SetDefault("vehicle.impactHigh", vp.ImpactHigh)
	v.SetDefault("vehicle.maxImpactDamage", vp.MaxImpactDamage)
	v.SetDefault("vehicle.mass", domain.DefaultVehicleMass)
	v.SetDefault("vehicle.maxHealth", 200.0)
	v.SetDefault("vehicle.waypointRadius", domain.DefaultDriverArrivalRadius)

	loco := domain.DefaultLocomotion()
	v.SetDefault("player.walkSpeed", loco.WalkSpeed)
	v.SetDefault("player.runSpeed", loco.RunSpeed)
	v.SetDefault("player.crouchSpeed", loco.CrouchSpeed)
	v.SetDefault("player.jumpHeight", loco.JumpHeight)
	v.SetDefault("player.gravity", loco.Gravity)
	v.SetDefault("player.turnRate", loco.TurnRate)
	v.SetDefault("player.interactRange", loco.InteractRange)
	v.SetDefault("player.maxHealth", domain.DefaultMaxHealth)
}

func setWeaponDefaults(v *viper.Viper, prefix string, p *domain.WeaponProfile) {
	v.SetDefault(prefix+".id", p.ID)
	v.SetDefault(prefix+".damage", p.Damage)
	v.SetDefault(prefix+".fireInterval", p.FireInterval.String())
	v.SetDefault(prefix+".range", p.Range)
	v.SetDefault(prefix+".recoil", p.Recoil)
	v.SetDefault(prefix+".magazineSize", p.MagazineSize)
	v.SetDefault(prefix+".reloadDuration", p.ReloadDuration.String())
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Seed = parseSeed(v.GetString("seed"))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseSeed: число берётся как есть, слово хешируется, пусто - случайный сид
func parseSeed(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return time.Now().UnixNano()
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	return utils.StringToSeed(raw)
}

// Validate проверяет то, что сломает симуляцию на старте
func (c Config) Validate() error {
	if c.Tick.Rate <= 0 {
		return fmt.Errorf("%w: tick.rate must be positive (got %d)", ErrInvalidConfig, c.Tick.Rate)
	}
	if c.Tick.FixedStep <= 0 {
		return fmt.Errorf("%w: tick.fixedStep must be positive (got %s)", ErrInvalidConfig, c.Tick.FixedStep)
	}
	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite:
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}
	if c.Pedestrian.Count < 0 {
		return fmt.Errorf("%w: pedestrian.count must not be negative", ErrInvalidConfig)
	}
	if err := c.Weapons.Pistol.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Weapons.Rifle.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// FrameDelta - длительность кадра основного цикла
func (c Config) FrameDelta() time.Duration {
	return time.Second / time.Duration(c.Tick.Rate)
}

// Драйверы хранилища
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)
