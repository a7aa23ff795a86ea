package domain

// Occupant - тело, которое может сесть в машину (игрок)
type Occupant interface {
	OccupantID() EntityID
	// PlaceAt переносит тело в указанную позу
	PlaceAt(t Transform)
	// SetControlSuspended выключает/включает собственное движение и ввод
	SetControlSuspended(suspended bool)
}

// OccupancyState - занято ли место водителя
type OccupancyState uint8

const (
	Vacant OccupancyState = iota
	Occupied
)

func (s OccupancyState) String() string {
	if s == Occupied {
		return "OCCUPIED"
	}
	return "VACANT"
}

// OccupancyController - место водителя. Не больше одного пассажира.
// Смещения заданы в локальных координатах машины.
type OccupancyController struct {
	SeatOffset Vec3 `json:"seatOffset"`
	ExitOffset Vec3 `json:"exitOffset"`

	occupant Occupant
}

func NewOccupancyController(seat, exit Vec3) *OccupancyController {
	return &OccupancyController{SeatOffset: seat, ExitOffset: exit}
}

func (c *OccupancyController) State() OccupancyState {
	if c.occupant != nil {
		return Occupied
	}
	return Vacant
}

// Occupant - текущий водитель (nil, если свободно)
func (c *OccupancyController) Occupant() Occupant {
	return c.occupant
}

// OccupantID - ID водителя или пустой ID
func (c *OccupancyController) OccupantID() EntityID {
	if c.occupant == nil {
		return ""
	}
	return c.occupant.OccupantID()
}

// SeatPose - поза водителя для данной позы машины
func (c *OccupancyController) SeatPose(vehicle Transform) Transform {
	return Transform{Position: vehicle.TransformPoint(c.SeatOffset), Yaw: vehicle.Yaw}
}

// ExitPose - куда ставить водителя при выходе
func (c *OccupancyController) ExitPose(vehicle Transform) Transform {
	return Transform{Position: vehicle.TransformPoint(c.ExitOffset), Yaw: vehicle.Yaw}
}

// TryEnter сажает кандидата. Если место занято, ничего не меняет и возвращает false.
func (c *OccupancyController) TryEnter(candidate Occupant, vehicle Transform) bool {
	if c.occupant != nil || candidate == nil {
		return false
	}
	c.occupant = candidate
	candidate.PlaceAt(c.SeatPose(vehicle))
	candidate.SetControlSuspended(true)
	return true
}

// Exit высаживает водителя у точки выхода и возвращает ему управление.
// На свободном месте ничего не делает.
func (c *OccupancyController) Exit(vehicle Transform) Occupant {
	if c.occupant == nil {
		return nil
	}
	prev := c.occupant
	prev.PlaceAt(c.ExitPose(vehicle))
	prev.SetControlSuspended(false)
	c.occupant = nil
	return prev
}

// Release освобождает место без перемещения тела (водитель погиб или удалён).
func (c *OccupancyController) Release() Occupant {
	prev := c.occupant
	c.occupant = nil
	return prev
}
