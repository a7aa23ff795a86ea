package domain

// VehicleProfile - параметры машины
type VehicleProfile struct {
	Acceleration float64 `json:"acceleration" mapstructure:"acceleration"`
	BrakeForce   float64 `json:"brakeForce" mapstructure:"brakeForce"`
	TurnTorque   float64 `json:"turnTorque" mapstructure:"turnTorque"`
	// Усиления для водителя-ИИ (умножаются на dt)
	AIAcceleration float64 `json:"aiAcceleration" mapstructure:"aiAcceleration"`
	AITurnTorque   float64 `json:"aiTurnTorque" mapstructure:"aiTurnTorque"`

	ImpactLow       float64 `json:"impactLow" mapstructure:"impactLow"`
	ImpactHigh      float64 `json:"impactHigh" mapstructure:"impactHigh"`
	MaxImpactDamage float64 `json:"maxImpactDamage" mapstructure:"maxImpactDamage"`
}

func DefaultVehicleProfile() VehicleProfile {
	return VehicleProfile{
		Acceleration:    DefaultVehicleAcceleration,
		BrakeForce:      DefaultVehicleBrakeForce,
		TurnTorque:      DefaultVehicleTurnTorque,
		AIAcceleration:  600,
		AITurnTorque:    20,
		ImpactLow:       DefaultImpactLow,
		ImpactHigh:      DefaultImpactHigh,
		MaxImpactDamage: DefaultMaxImpactDamage,
	}
}

// ImpactDamage переводит импульс удара в урон.
// Слабые удары (не выше нижнего порога) урона не наносят.
func (p VehicleProfile) ImpactDamage(impulse float64) float64 {
	if !IsFinite(impulse) || impulse <= p.ImpactLow {
		return 0
	}
	return InverseLerp(p.ImpactLow, p.ImpactHigh, impulse) * p.MaxImpactDamage
}

// VehicleComponent - машина: профиль и текущие команды
type VehicleComponent struct {
	Profile  VehicleProfile  `json:"profile"`
	Controls VehicleControls `json:"controls"`
}
