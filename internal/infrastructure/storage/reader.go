package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sandbox-core/internal/domain"
	"time"
)

var ErrBadReplay = errors.New("invalid replay file")

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: magic %q", ErrBadReplay, header.Magic[:])
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", ErrBadReplay, header.Version, Version1)
	}
	if header.FrameCount < 0 || header.ActionCount < 0 {
		return nil, fmt.Errorf("%w: negative record count", ErrBadReplay)
	}

	session := &domain.ReplaySession{
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		FixedStep: time.Duration(header.FixedStep),
		Frames:    make([]domain.ReplayFrame, 0, header.FrameCount),
		Actions:   make([]domain.ReplayAction, 0, header.ActionCount),
	}

	// 2. Кадры
	for i := 0; i < int(header.FrameCount); i++ {
		var rec FrameRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read frame %d: %w", i, err)
		}
		session.Frames = append(session.Frames, decodeFrame(rec))
	}

	// 3. Команды
	for i := 0; i < int(header.ActionCount); i++ {
		var ah ActionHeader
		if err := binary.Read(r, binary.LittleEndian, &ah); err != nil {
			return nil, fmt.Errorf("failed to read action %d: %w", i, err)
		}

		act := domain.ReplayAction{
			Tick:   ah.Tick,
			Action: domain.ActionType(ah.ActionType),
		}

		actorBuf := make([]byte, ah.ActorLen)
		if _, err := io.ReadFull(r, actorBuf); err != nil {
			return nil, err
		}
		act.Actor = domain.EntityID(actorBuf)

		if ah.PayloadLen > 0 {
			act.Payload = make([]byte, ah.PayloadLen)
			if _, err := io.ReadFull(r, act.Payload); err != nil {
				return nil, err
			}
		} else {
			act.Payload = json.RawMessage{}
		}

		session.Actions = append(session.Actions, act)
	}

	return session, nil
}

func decodeFrame(rec FrameRecord) domain.ReplayFrame {
	return domain.ReplayFrame{
		Tick:  rec.Tick,
		Delta: time.Duration(rec.Delta),
		Input: domain.InputFrame{
			MoveAxis:        domain.Vec2{X: rec.MoveX, Y: rec.MoveY},
			LookDirection:   domain.Vec3{X: rec.LookX, Y: rec.LookY, Z: rec.LookZ},
			FireHeld:        rec.Buttons&buttonFire != 0,
			AimHeld:         rec.Buttons&buttonAim != 0,
			InteractPressed: rec.Buttons&buttonInteract != 0,
			ReloadPressed:   rec.Buttons&buttonReload != 0,
			JumpPressed:     rec.Buttons&buttonJump != 0,
			SprintHeld:      rec.Buttons&buttonSprint != 0,
			BrakeHeld:       rec.Buttons&buttonBrake != 0,
			CrouchPressed:   rec.Buttons&buttonCrouch != 0,
			SelectSlot:      int(rec.SelectSlot),
		},
	}
}
