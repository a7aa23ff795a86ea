package domain

// InputFrame - нормализованный ввод за один кадр.
// Кнопки "Pressed" - фронт нажатия в этом кадре, "Held" - удержание.
type InputFrame struct {
	MoveAxis        Vec2 `json:"moveAxis"` // X - вправо, Y - вперёд
	FireHeld        bool `json:"fireHeld"`
	AimHeld         bool `json:"aimHeld"`
	InteractPressed bool `json:"interactPressed"`
	ReloadPressed   bool `json:"reloadPressed"`
	JumpPressed     bool `json:"jumpPressed"`
	CrouchPressed   bool `json:"crouchPressed"`

	SprintHeld bool `json:"sprintHeld"`
	BrakeHeld  bool `json:"brakeHeld"`
	// LookDirection - куда смотрит камера (прицел и луч взаимодействия).
	// Нулевой вектор - взгляд вдоль корпуса.
	LookDirection Vec3 `json:"lookDirection"`
	// SelectSlot - выбор оружия, -1 если не нажато
	SelectSlot int `json:"selectSlot"`
}

// NoInput - пустой кадр ввода
func NoInput() InputFrame {
	return InputFrame{SelectSlot: -1}
}
