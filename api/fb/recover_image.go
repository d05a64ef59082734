// Package fb holds flatbuffers accessors for the octet-stream API variant,
// written in the layout flatc generates for:
//
//	table RecoverImageRequest { lsbs_to_use: ubyte; image: [ubyte]; }
//	table RecoverImageResponse { payload: [ubyte]; }
package fb

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type RecoverImageRequest struct {
	_tab flatbuffers.Table
}

func GetRootAsRecoverImageRequest(buf []byte, offset flatbuffers.UOffsetT) *RecoverImageRequest {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &RecoverImageRequest{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *RecoverImageRequest) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *RecoverImageRequest) LsbsToUse() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *RecoverImageRequest) ImageBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func RecoverImageRequestStart(builder *flatbuffers.Builder) {
	builder.StartObject(2)
}

func RecoverImageRequestAddLsbsToUse(builder *flatbuffers.Builder, lsbsToUse byte) {
	builder.PrependByteSlot(0, lsbsToUse, 0)
}

func RecoverImageRequestAddImage(builder *flatbuffers.Builder, image flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, image, 0)
}

func RecoverImageRequestEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type RecoverImageResponse struct {
	_tab flatbuffers.Table
}

func GetRootAsRecoverImageResponse(buf []byte, offset flatbuffers.UOffsetT) *RecoverImageResponse {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &RecoverImageResponse{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *RecoverImageResponse) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *RecoverImageResponse) PayloadBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func RecoverImageResponseStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func RecoverImageResponseAddPayload(builder *flatbuffers.Builder, payload flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, payload, 0)
}

func RecoverImageResponseEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
