package domain

import "encoding/json"

// InternalCommand - команда в очереди симуляции.
// Намерения игрока собираются из InputFrame, отладочные приходят по WebSocket.
type InternalCommand struct {
	Action ActionType
	// Actor - исполнитель, пустой для отладочных команд
	Actor EntityID
	// Payload разбирает хендлер
	Payload json.RawMessage
}
