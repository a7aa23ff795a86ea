package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionFire
	ActionReload
	ActionInteract
	ActionSelectWeapon
	// Отладочные команды
	ActionDamage
	ActionHeal
	ActionKill
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"FIRE":          ActionFire,
	"RELOAD":        ActionReload,
	"INTERACT":      ActionInteract,
	"SELECT_WEAPON": ActionSelectWeapon,
	"DAMAGE":        ActionDamage,
	"HEAL":          ActionHeal,
	"KILL":          ActionKill,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionFire:         "FIRE",
	ActionReload:       "RELOAD",
	ActionInteract:     "INTERACT",
	ActionSelectWeapon: "SELECT_WEAPON",
	ActionDamage:       "DAMAGE",
	ActionHeal:         "HEAL",
	ActionKill:         "KILL",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsAdmin - отладочная команда, приходит не от ввода игрока
func (a ActionType) IsAdmin() bool {
	return a >= ActionDamage && a <= ActionKill
}
