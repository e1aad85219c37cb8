package transcode

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for conversion events.
var (
	SignalConverterCreated = capitan.NewSignal("transcode.converter.created", "Converter instantiated")
	SignalConvertStart     = capitan.NewSignal("transcode.convert.start", "Conversion beginning")
	SignalConvertComplete  = capitan.NewSignal("transcode.convert.complete", "Conversion finished")
	SignalLargeInput       = capitan.NewSignal("transcode.input.large", "Input exceeds the large input threshold")
	SignalResultMarshaled  = capitan.NewSignal("transcode.result.marshaled", "Result envelope marshaled")
)

// Keys for typed event data.
var (
	KeyMode        = capitan.NewStringKey("mode")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyInputSize   = capitan.NewIntKey("input_size")
	KeyOutputSize  = capitan.NewIntKey("output_size")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitConverterCreated emits an event when a converter is created.
func emitConverterCreated(ctx context.Context, m Mode) {
	capitan.Emit(ctx, SignalConverterCreated,
		KeyMode.Field(string(m)),
	)
}

// emitConvertStart emits an event when a conversion begins.
func emitConvertStart(ctx context.Context, m Mode, inputSize int) {
	capitan.Emit(ctx, SignalConvertStart,
		KeyMode.Field(string(m)),
		KeyInputSize.Field(inputSize),
	)
}

// emitLargeInput emits an event when input exceeds LargeInputThreshold.
func emitLargeInput(ctx context.Context, m Mode, inputSize int) {
	capitan.Emit(ctx, SignalLargeInput,
		KeyMode.Field(string(m)),
		KeyInputSize.Field(inputSize),
	)
}

// emitConvertComplete emits an event when a conversion finishes.
func emitConvertComplete(ctx context.Context, m Mode, inputSize, outputSize int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyMode.Field(string(m)),
		KeyInputSize.Field(inputSize),
		KeyOutputSize.Field(outputSize),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalConvertComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalConvertComplete, fields...)
	}
}

// emitResultMarshaled emits an event when a result is marshaled.
func emitResultMarshaled(ctx context.Context, m Mode, contentType string, size int, err error) {
	fields := []capitan.Field{
		KeyMode.Field(string(m)),
		KeyContentType.Field(contentType),
		KeySize.Field(size),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalResultMarshaled, fields...)
	} else {
		capitan.Emit(ctx, SignalResultMarshaled, fields...)
	}
}
