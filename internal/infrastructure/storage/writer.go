package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sandbox-core/internal/domain"
)

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) (*ReplayService, error) {
	// Создаем папку если нет
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create replay dir: %w", err)
	}
	return &ReplayService{SaveDir: dir}, nil
}

// Save пишет запись в SaveDir и возвращает путь к файлу
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	filename := fmt.Sprintf("replay_%d_%d.sbrp", session.Seed, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// Кадров много (по одному на тик), пишем через буфер
	bw := bufio.NewWriter(f)
	if err := writeBinary(bw, session); err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("flush replay: %w", err)
	}
	return path, nil
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	// 1. Подготавливаем и пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := ReplayFileHeader{
		Version:     Version1,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		FixedStep:   int64(s.FixedStep),
		FrameCount:  int32(len(s.Frames)),
		ActionCount: int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Кадры
	for _, fr := range s.Frames {
		rec := encodeFrame(fr)
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write frame %d: %w", fr.Tick, err)
		}
	}

	// 3. Отладочные команды
	for _, act := range s.Actions {
		actorBytes := []byte(act.Actor)
		if len(actorBytes) > 255 {
			return fmt.Errorf("actor id too long: %d", len(actorBytes))
		}

		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("payload too long: %d", payloadLen)
		}

		actHeader := ActionHeader{
			Tick:       act.Tick,
			ActionType: uint8(act.Action),
			ActorLen:   uint8(len(actorBytes)),
			PayloadLen: uint16(payloadLen),
		}
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}

		// Пишем динамические данные (тело)
		if _, err := w.Write(actorBytes); err != nil {
			return err
		}
		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}

func encodeFrame(fr domain.ReplayFrame) FrameRecord {
	in := fr.Input
	var buttons uint8
	for _, b := range [...]struct {
		bit uint8
		on  bool
	}{
		{buttonFire, in.FireHeld},
		{buttonAim, in.AimHeld},
		{buttonInteract, in.InteractPressed},
		{buttonReload, in.ReloadPressed},
		{buttonJump, in.JumpPressed},
		{buttonSprint, in.SprintHeld},
		{buttonBrake, in.BrakeHeld},
		{buttonCrouch, in.CrouchPressed},
	} {
		if b.on {
			buttons |= b.bit
		}
	}

	slot := in.SelectSlot
	if slot < -1 || slot > 127 {
		slot = -1
	}

	return FrameRecord{
		Tick:       fr.Tick,
		Delta:      int64(fr.Delta),
		MoveX:      in.MoveAxis.X,
		MoveY:      in.MoveAxis.Y,
		LookX:      in.LookDirection.X,
		LookY:      in.LookDirection.Y,
		LookZ:      in.LookDirection.Z,
		Buttons:    buttons,
		SelectSlot: int8(slot),
	}
}
