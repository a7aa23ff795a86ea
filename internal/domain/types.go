package domain

import "strings"

// EntityKind - тип сущности
type EntityKind uint8

const (
	KindUnknown EntityKind = iota
	KindPlayer
	KindPedestrian
	KindVehicle
)

var kindStringToType = map[string]EntityKind{
	"PLAYER":     KindPlayer,
	"PEDESTRIAN": KindPedestrian,
	"VEHICLE":    KindVehicle,
}

var kindTypeToString = map[EntityKind]string{
	KindPlayer:     "PLAYER",
	KindPedestrian: "PEDESTRIAN",
	KindVehicle:    "VEHICLE",
}

// ParseKind конвертирует строку (конфиг, JSON) в EntityKind
func ParseKind(s string) EntityKind {
	if val, ok := kindStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return KindUnknown
}

func (k EntityKind) String() string {
	if val, ok := kindTypeToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// LayerMask - битовая маска слоёв для лучевых проверок
type LayerMask uint32

const (
	LayerDefault LayerMask = 1 << iota
	LayerCharacters
	LayerVehicles
	LayerStatic

	LayerAll LayerMask = ^LayerMask(0)
)

// Has проверяет пересечение масок
func (m LayerMask) Has(layer LayerMask) bool {
	return m&layer != 0
}

// LayerFor - слой, на котором живёт сущность данного типа
func LayerFor(kind EntityKind) LayerMask {
	switch kind {
	case KindPlayer, KindPedestrian:
		return LayerCharacters
	case KindVehicle:
		return LayerVehicles
	default:
		return LayerDefault
	}
}
