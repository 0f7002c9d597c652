package packet

//mcgen:packet id=0x00
type StatusRequest struct{}

// StatusResponse carries the server list JSON document verbatim.
//
//mcgen:packet id=0x00
type StatusResponse struct {
	JSON string
}

//mcgen:packet id=0x01
type PingRequest struct {
	Payload int64
}

//mcgen:packet id=0x01
type PongResponse struct {
	Payload int64
}
