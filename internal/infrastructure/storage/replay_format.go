package storage

const (
	MagicHeader string = `SBRP` // 4 байта
	Version1    uint32 = 1
)

// ReplayFileHeader - это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        int64   // 8 байт
	Timestamp   int64   // 8 байт
	FixedStep   int64   // 8 байт, наносекунды
	FrameCount  int32   // 4 байта
	ActionCount int32   // 4 байта
}

// FrameRecord - ввод игрока за один кадр, фиксированного размера.
type FrameRecord struct {
	Tick       uint64
	Delta      int64 // наносекунды
	MoveX      float64
	MoveY      float64
	LookX      float64
	LookY      float64
	LookZ      float64
	Buttons    uint8
	SelectSlot int8
}

// Биты FrameRecord.Buttons
const (
	buttonFire uint8 = 1 << iota
	buttonAim
	buttonInteract
	buttonReload
	buttonJump
	buttonSprint
	buttonBrake
	buttonCrouch
)

// ActionHeader - заголовок каждой записи отладочной команды.
type ActionHeader struct {
	Tick       uint64 // 8
	ActionType uint8  // 1
	ActorLen   uint8  // 1
	PayloadLen uint16 // 2
}
