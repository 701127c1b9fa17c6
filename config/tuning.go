package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML shape of an optional tuning-override file passed
// with -tuning. Only fields present in the file are applied; zero
// values mean "keep the built-in default".
type Tuning struct {
	Fighter struct {
		MoveSpeed   float64 `yaml:"move_speed"`
		JumpImpulse float64 `yaml:"jump_impulse"`
		Gravity     float64 `yaml:"gravity"`
		MaxHealth   int     `yaml:"max_health"`
		MaxEnergy   float64 `yaml:"max_energy"`
		EnergyRegen float64 `yaml:"energy_regen"`
	} `yaml:"fighter"`

	Combat struct {
		AttackDamage   int     `yaml:"attack_damage"`
		AttackReach    float64 `yaml:"attack_reach"`
		AttackCooldown int     `yaml:"attack_cooldown"`
		HitStun        int     `yaml:"hit_stun"`
		BlockStun      int     `yaml:"block_stun"`
		KnockbackForce float64 `yaml:"knockback_force"`
	} `yaml:"combat"`

	Projectile struct {
		Speed      float64 `yaml:"speed"`
		Damage     int     `yaml:"damage"`
		HitStun    int     `yaml:"hit_stun"`
		EnergyCost float64 `yaml:"energy_cost"`
		Cooldown   int     `yaml:"cooldown"`
	} `yaml:"projectile"`

	Match struct {
		RoundTarget       int `yaml:"round_target"`
		CountdownDuration int `yaml:"countdown_duration"`
	} `yaml:"match"`
}

// LoadTuning reads a YAML tuning file and applies its non-zero values
// over the built-in defaults.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	ApplyTuning(&t)
	return nil
}

// ApplyTuning overrides the global configuration with every non-zero
// field of t.
func ApplyTuning(t *Tuning) {
	setF(&Fighter.MoveSpeed, t.Fighter.MoveSpeed)
	setF(&Fighter.JumpImpulse, t.Fighter.JumpImpulse)
	setF(&Fighter.Gravity, t.Fighter.Gravity)
	setI(&Fighter.MaxHealth, t.Fighter.MaxHealth)
	setF(&Fighter.MaxEnergy, t.Fighter.MaxEnergy)
	setF(&Fighter.EnergyRegen, t.Fighter.EnergyRegen)

	setI(&Combat.AttackDamage, t.Combat.AttackDamage)
	setF(&Combat.AttackReach, t.Combat.AttackReach)
	setI(&Combat.AttackCooldown, t.Combat.AttackCooldown)
	setI(&Combat.HitStun, t.Combat.HitStun)
	setI(&Combat.BlockStun, t.Combat.BlockStun)
	setF(&Combat.KnockbackForce, t.Combat.KnockbackForce)

	setF(&Projectile.Speed, t.Projectile.Speed)
	setI(&Projectile.Damage, t.Projectile.Damage)
	setI(&Projectile.HitStun, t.Projectile.HitStun)
	setF(&Projectile.EnergyCost, t.Projectile.EnergyCost)
	setI(&Projectile.Cooldown, t.Projectile.Cooldown)

	setI(&Match.RoundTarget, t.Match.RoundTarget)
	setI(&Match.CountdownDuration, t.Match.CountdownDuration)
}

func setF(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func setI(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
