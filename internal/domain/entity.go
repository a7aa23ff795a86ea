package domain

// LocomotionComponent - пешее передвижение игрока
type LocomotionComponent struct {
	WalkSpeed     float64 `json:"walkSpeed" mapstructure:"walkSpeed"`
	RunSpeed      float64 `json:"runSpeed" mapstructure:"runSpeed"`
	CrouchSpeed   float64 `json:"crouchSpeed" mapstructure:"crouchSpeed"`
	JumpHeight    float64 `json:"jumpHeight" mapstructure:"jumpHeight"`
	Gravity       float64 `json:"gravity" mapstructure:"gravity"`
	TurnRate      float64 `json:"turnRate" mapstructure:"turnRate"`
	InteractRange float64 `json:"interactRange" mapstructure:"interactRange"`

	VerticalVelocity float64 `json:"verticalVelocity"`
	Grounded         bool    `json:"grounded"`
	// Crouching - переключается кнопкой, пока включено идём медленно
	Crouching bool `json:"crouching"`
}

func DefaultLocomotion() LocomotionComponent {
	return LocomotionComponent{
		WalkSpeed:     DefaultWalkSpeed,
		RunSpeed:      DefaultRunSpeed,
		CrouchSpeed:   DefaultCrouchSpeed,
		JumpHeight:    DefaultJumpHeight,
		Gravity:       DefaultGravity,
		TurnRate:      DefaultPlayerTurnRate,
		InteractRange: DefaultInteractRange,
	}
}

// Entity - актёр симуляции: игрок, пешеход или машина.
// Компоненты опциональны: nil означает, что возможности нет.
type Entity struct {
	ID        EntityID   `json:"id"`
	Kind      EntityKind `json:"kind"`
	Name      string     `json:"name"`
	Transform Transform  `json:"transform"`

	Vitality   *Vitality            `json:"vitality,omitempty"`
	Arsenal    *Arsenal             `json:"arsenal,omitempty"`
	Occupancy  *OccupancyController `json:"occupancy,omitempty"`
	Vehicle    *VehicleComponent    `json:"vehicle,omitempty"`
	Navigation *NavigatingAgent     `json:"navigation,omitempty"`
	Driver     *DriverAgent         `json:"driver,omitempty"`
	Locomotion *LocomotionComponent `json:"locomotion,omitempty"`

	// SeatedIn - машина, в которой сидит сущность
	SeatedIn EntityID `json:"seatedIn,omitempty"`
	// ControlSuspended - собственное движение и ввод отключены (сидит в машине)
	ControlSuspended bool `json:"controlSuspended"`
}

// IsAlive - сущность без здоровья считается неуязвимой и живой
func (e *Entity) IsAlive() bool {
	return e.Vitality == nil || !e.Vitality.IsDead()
}

// IsSeated - сидит ли в машине
func (e *Entity) IsSeated() bool {
	return !e.SeatedIn.IsZero()
}

// OccupantID реализует Occupant
func (e *Entity) OccupantID() EntityID { return e.ID }

// PlaceAt реализует Occupant
func (e *Entity) PlaceAt(t Transform) { e.Transform = t }

// SetControlSuspended реализует Occupant
func (e *Entity) SetControlSuspended(suspended bool) {
	e.ControlSuspended = suspended
	if !suspended {
		e.SeatedIn = ""
	}
}
