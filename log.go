package satchel

import (
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// logEntity emits one debug event with the entity's kind names and
// payloads. Payload marshaling is skipped entirely when debug logging is
// disabled.
func (w *world) logEntity(msg string, ent *entity) {
	ev := w.log.Debug()
	if ev == nil {
		return
	}
	names := zerolog.Arr()
	payloads := zerolog.Dict()
	for _, v := range ent.Values() {
		names = names.Str(v.name)
		buf, err := json.Marshal(v.ptr)
		if err != nil {
			payloads = payloads.Str(v.name, err.Error())
			continue
		}
		payloads = payloads.RawJSON(v.name, buf)
	}
	ev.Uint64("entity", uint64(ent.id)).
		Int("world_size", len(w.entities)).
		Int("total_kinds", ent.Len()).
		Array("kinds", names).
		Dict("components", payloads).
		Msg(msg)
}
