package domain

// ControlSource - кто сейчас управляет машиной
type ControlSource uint8

const (
	ControlNone ControlSource = iota
	ControlOccupant
	ControlDriverAI
)

func (c ControlSource) String() string {
	switch c {
	case ControlOccupant:
		return "OCCUPANT"
	case ControlDriverAI:
		return "DRIVER_AI"
	default:
		return "NONE"
	}
}

// VehicleControls - нормализованные команды машине
type VehicleControls struct {
	Forward float64       `json:"forward"` // [-1, 1] для игрока, [0, 1] для ИИ
	Steer   float64       `json:"steer"`   // [-1, 1]
	Brake   bool          `json:"brake"`
	Source  ControlSource `json:"source"`
}

// DriverAgent - водитель-ИИ, едет по замкнутой цепочке точек
type DriverAgent struct {
	Path          []Vec3  `json:"path"`
	Index         int     `json:"index"`
	ArrivalRadius float64 `json:"arrivalRadius"`
}

func NewDriverAgent(path []Vec3, arrivalRadius float64) *DriverAgent {
	if arrivalRadius <= 0 {
		arrivalRadius = DefaultDriverArrivalRadius
	}
	return &DriverAgent{Path: path, ArrivalRadius: arrivalRadius}
}

// Target - текущая точка маршрута
func (d *DriverAgent) Target() (Vec3, bool) {
	if len(d.Path) == 0 {
		return VecZero, false
	}
	return d.Path[d.Index%len(d.Path)], true
}

// Advance - переход к следующей точке по кругу
func (d *DriverAgent) Advance() {
	if len(d.Path) == 0 {
		return
	}
	d.Index = (d.Index + 1) % len(d.Path)
}
