package msgs

import "github.com/golang/protobuf/proto"

// Vector is a 3-axis reading.
type Vector struct {
	X float64 `protobuf:"fixed64,1,opt,name=x,proto3" json:"x,omitempty"`
	Y float64 `protobuf:"fixed64,2,opt,name=y,proto3" json:"y,omitempty"`
	Z float64 `protobuf:"fixed64,3,opt,name=z,proto3" json:"z,omitempty"`
}

func (m *Vector) Reset()         { *m = Vector{} }
func (m *Vector) String() string { return proto.CompactTextString(m) }
func (*Vector) ProtoMessage()    {}

// Status reports the live status dataset.
type Status struct {
	JoyFront       int32   `protobuf:"zigzag32,1,opt,name=joy_front,json=joyFront,proto3" json:"joy_front,omitempty"`
	JoySide        int32   `protobuf:"zigzag32,2,opt,name=joy_side,json=joySide,proto3" json:"joy_side,omitempty"`
	BatteryLevel   uint32  `protobuf:"varint,3,opt,name=battery_level,json=batteryLevel,proto3" json:"battery_level,omitempty"`
	BatteryCurrent float64 `protobuf:"fixed64,4,opt,name=battery_current,json=batteryCurrent,proto3" json:"battery_current,omitempty"`
	RightAngle     float64 `protobuf:"fixed64,5,opt,name=right_angle,json=rightAngle,proto3" json:"right_angle,omitempty"`
	RightSpeed     float64 `protobuf:"fixed64,6,opt,name=right_speed,json=rightSpeed,proto3" json:"right_speed,omitempty"`
	LeftAngle      float64 `protobuf:"fixed64,7,opt,name=left_angle,json=leftAngle,proto3" json:"left_angle,omitempty"`
	LeftSpeed      float64 `protobuf:"fixed64,8,opt,name=left_speed,json=leftSpeed,proto3" json:"left_speed,omitempty"`
	Accelerometer  *Vector `protobuf:"bytes,9,opt,name=accelerometer,proto3" json:"accelerometer,omitempty"`
	Gyro           *Vector `protobuf:"bytes,10,opt,name=gyro,proto3" json:"gyro,omitempty"`
	Power          bool    `protobuf:"varint,11,opt,name=power,proto3" json:"power,omitempty"`
	SpeedMode      uint32  `protobuf:"varint,12,opt,name=speed_mode,json=speedMode,proto3" json:"speed_mode,omitempty"`
	ErrorCode      uint32  `protobuf:"varint,13,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	Timestamp      int32   `protobuf:"zigzag32,14,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	TimeDiffMs     int32   `protobuf:"zigzag32,15,opt,name=time_diff_ms,json=timeDiffMs,proto3" json:"time_diff_ms,omitempty"`
	Seq            uint32  `protobuf:"varint,16,opt,name=seq,proto3" json:"seq,omitempty"`
}

func (m *Status) Reset()         { *m = Status{} }
func (m *Status) String() string { return proto.CompactTextString(m) }
func (*Status) ProtoMessage()    {}

// MessageName implements Message.
func (*Status) MessageName() string { return StatusName }

// NewMessage implements Message.
func (*Status) NewMessage() Message { return &Status{} }

// SpeedProfile is the setting of one speed mode.
type SpeedProfile struct {
	SpeedMode           int32  `protobuf:"varint,1,opt,name=speed_mode,json=speedMode,proto3" json:"speed_mode,omitempty"`
	ForwardSpeed        uint32 `protobuf:"varint,2,opt,name=forward_speed,json=forwardSpeed,proto3" json:"forward_speed,omitempty"`
	ForwardAcceleration uint32 `protobuf:"varint,3,opt,name=forward_acceleration,json=forwardAcceleration,proto3" json:"forward_acceleration,omitempty"`
	ForwardDeceleration uint32 `protobuf:"varint,4,opt,name=forward_deceleration,json=forwardDeceleration,proto3" json:"forward_deceleration,omitempty"`
	ReverseSpeed        uint32 `protobuf:"varint,5,opt,name=reverse_speed,json=reverseSpeed,proto3" json:"reverse_speed,omitempty"`
	ReverseAcceleration uint32 `protobuf:"varint,6,opt,name=reverse_acceleration,json=reverseAcceleration,proto3" json:"reverse_acceleration,omitempty"`
	ReverseDeceleration uint32 `protobuf:"varint,7,opt,name=reverse_deceleration,json=reverseDeceleration,proto3" json:"reverse_deceleration,omitempty"`
	TurnSpeed           uint32 `protobuf:"varint,8,opt,name=turn_speed,json=turnSpeed,proto3" json:"turn_speed,omitempty"`
	TurnAcceleration    uint32 `protobuf:"varint,9,opt,name=turn_acceleration,json=turnAcceleration,proto3" json:"turn_acceleration,omitempty"`
	TurnDeceleration    uint32 `protobuf:"varint,10,opt,name=turn_deceleration,json=turnDeceleration,proto3" json:"turn_deceleration,omitempty"`
}

func (m *SpeedProfile) Reset()         { *m = SpeedProfile{} }
func (m *SpeedProfile) String() string { return proto.CompactTextString(m) }
func (*SpeedProfile) ProtoMessage()    {}

// SpeedProfiles reports all known speed profiles.
type SpeedProfiles struct {
	Profiles []*SpeedProfile `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	Seq      uint32          `protobuf:"varint,2,opt,name=seq,proto3" json:"seq,omitempty"`
}

func (m *SpeedProfiles) Reset()         { *m = SpeedProfiles{} }
func (m *SpeedProfiles) String() string { return proto.CompactTextString(m) }
func (*SpeedProfiles) ProtoMessage()    {}

// MessageName implements Message.
func (*SpeedProfiles) MessageName() string { return SpeedProfilesName }

// NewMessage implements Message.
func (*SpeedProfiles) NewMessage() Message { return &SpeedProfiles{} }

// PowerOn reports the device has been powered on.
type PowerOn struct{}

func (m *PowerOn) Reset()         { *m = PowerOn{} }
func (m *PowerOn) String() string { return proto.CompactTextString(m) }
func (*PowerOn) ProtoMessage()    {}

// MessageName implements Message.
func (*PowerOn) MessageName() string { return PowerOnName }

// NewMessage implements Message.
func (*PowerOn) NewMessage() Message { return &PowerOn{} }

// Joystick moves the virtual joystick, -100..100 on each axis.
// A positive TimeoutMs holds the position until timeout or Unhold.
type Joystick struct {
	Front     int32 `protobuf:"zigzag32,1,opt,name=front,proto3" json:"front,omitempty"`
	Side      int32 `protobuf:"zigzag32,2,opt,name=side,proto3" json:"side,omitempty"`
	TimeoutMs int64 `protobuf:"zigzag64,3,opt,name=timeout_ms,json=timeoutMs,proto3" json:"timeout_ms,omitempty"`
}

func (m *Joystick) Reset()         { *m = Joystick{} }
func (m *Joystick) String() string { return proto.CompactTextString(m) }
func (*Joystick) ProtoMessage()    {}

// MessageName implements Message.
func (*Joystick) MessageName() string { return JoystickName }

// NewMessage implements Message.
func (*Joystick) NewMessage() Message { return &Joystick{} }

// Velocity sets target velocities.
// A positive TimeoutMs holds them until timeout or Unhold.
type Velocity struct {
	Front     int32 `protobuf:"zigzag32,1,opt,name=front,proto3" json:"front,omitempty"`
	Side      int32 `protobuf:"zigzag32,2,opt,name=side,proto3" json:"side,omitempty"`
	TimeoutMs int64 `protobuf:"zigzag64,3,opt,name=timeout_ms,json=timeoutMs,proto3" json:"timeout_ms,omitempty"`
}

func (m *Velocity) Reset()         { *m = Velocity{} }
func (m *Velocity) String() string { return proto.CompactTextString(m) }
func (*Velocity) ProtoMessage()    {}

// MessageName implements Message.
func (*Velocity) MessageName() string { return VelocityName }

// NewMessage implements Message.
func (*Velocity) NewMessage() Message { return &Velocity{} }

// Stop centers the virtual joystick.
type Stop struct{}

func (m *Stop) Reset()         { *m = Stop{} }
func (m *Stop) String() string { return proto.CompactTextString(m) }
func (*Stop) ProtoMessage()    {}

// MessageName implements Message.
func (*Stop) MessageName() string { return StopName }

// NewMessage implements Message.
func (*Stop) NewMessage() Message { return &Stop{} }

// Release ends holding and returns control to the user.
type Release struct{}

func (m *Release) Reset()         { *m = Release{} }
func (m *Release) String() string { return proto.CompactTextString(m) }
func (*Release) ProtoMessage()    {}

// MessageName implements Message.
func (*Release) MessageName() string { return ReleaseName }

// NewMessage implements Message.
func (*Release) NewMessage() Message { return &Release{} }

// Hold repeats a joystick or velocity command.
type Hold struct {
	Control   string `protobuf:"bytes,1,opt,name=control,proto3" json:"control,omitempty"`
	Front     int32  `protobuf:"zigzag32,2,opt,name=front,proto3" json:"front,omitempty"`
	Side      int32  `protobuf:"zigzag32,3,opt,name=side,proto3" json:"side,omitempty"`
	TimeoutMs int64  `protobuf:"zigzag64,4,opt,name=timeout_ms,json=timeoutMs,proto3" json:"timeout_ms,omitempty"`
}

func (m *Hold) Reset()         { *m = Hold{} }
func (m *Hold) String() string { return proto.CompactTextString(m) }
func (*Hold) ProtoMessage()    {}

// MessageName implements Message.
func (*Hold) MessageName() string { return HoldName }

// NewMessage implements Message.
func (*Hold) NewMessage() Message { return &Hold{} }

// Unhold stops holding.
type Unhold struct{}

func (m *Unhold) Reset()         { *m = Unhold{} }
func (m *Unhold) String() string { return proto.CompactTextString(m) }
func (*Unhold) ProtoMessage()    {}

// MessageName implements Message.
func (*Unhold) MessageName() string { return UnholdName }

// NewMessage implements Message.
func (*Unhold) NewMessage() Message { return &Unhold{} }

// Power turns the device on or off.
type Power struct {
	On bool `protobuf:"varint,1,opt,name=on,proto3" json:"on,omitempty"`
}

func (m *Power) Reset()         { *m = Power{} }
func (m *Power) String() string { return proto.CompactTextString(m) }
func (*Power) ProtoMessage()    {}

// MessageName implements Message.
func (*Power) MessageName() string { return PowerName }

// NewMessage implements Message.
func (*Power) NewMessage() Message { return &Power{} }

// StreamStart starts reporting a dataset.
type StreamStart struct {
	IntervalMs int32 `protobuf:"varint,1,opt,name=interval_ms,json=intervalMs,proto3" json:"interval_ms,omitempty"`
	DataSet    int32 `protobuf:"varint,2,opt,name=data_set,json=dataSet,proto3" json:"data_set,omitempty"`
	SpeedMode  int32 `protobuf:"varint,3,opt,name=speed_mode,json=speedMode,proto3" json:"speed_mode,omitempty"`
}

func (m *StreamStart) Reset()         { *m = StreamStart{} }
func (m *StreamStart) String() string { return proto.CompactTextString(m) }
func (*StreamStart) ProtoMessage()    {}

// MessageName implements Message.
func (*StreamStart) MessageName() string { return StreamStartName }

// NewMessage implements Message.
func (*StreamStart) NewMessage() Message { return &StreamStart{} }

// StreamStop stops reporting datasets.
type StreamStop struct{}

func (m *StreamStop) Reset()         { *m = StreamStop{} }
func (m *StreamStop) String() string { return proto.CompactTextString(m) }
func (*StreamStop) ProtoMessage()    {}

// MessageName implements Message.
func (*StreamStop) MessageName() string { return StreamStopName }

// NewMessage implements Message.
func (*StreamStop) NewMessage() Message { return &StreamStop{} }

type SetSpeedProfile struct {
	Profile *SpeedProfile `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
}

func (m *SetSpeedProfile) Reset()         { *m = SetSpeedProfile{} }
func (m *SetSpeedProfile) String() string { return proto.CompactTextString(m) }
func (*SetSpeedProfile) ProtoMessage()    {}

// MessageName implements Message.
func (*SetSpeedProfile) MessageName() string { return SetSpeedProfileName }

// NewMessage implements Message.
func (*SetSpeedProfile) NewMessage() Message { return &SetSpeedProfile{} }

type BatterySaving struct {
	LowLevel int32 `protobuf:"varint,1,opt,name=low_level,json=lowLevel,proto3" json:"low_level,omitempty"`
	Buzzer   bool  `protobuf:"varint,2,opt,name=buzzer,proto3" json:"buzzer,omitempty"`
}

func (m *BatterySaving) Reset()         { *m = BatterySaving{} }
func (m *BatterySaving) String() string { return proto.CompactTextString(m) }
func (*BatterySaving) ProtoMessage()    {}

// MessageName implements Message.
func (*BatterySaving) MessageName() string { return BatterySavingName }

// NewMessage implements Message.
func (*BatterySaving) NewMessage() Message { return &BatterySaving{} }

type BatteryVoltageOut struct {
	On bool `protobuf:"varint,1,opt,name=on,proto3" json:"on,omitempty"`
}

func (m *BatteryVoltageOut) Reset()         { *m = BatteryVoltageOut{} }
func (m *BatteryVoltageOut) String() string { return proto.CompactTextString(m) }
func (*BatteryVoltageOut) ProtoMessage()    {}

// MessageName implements Message.
func (*BatteryVoltageOut) MessageName() string { return BatteryVoltageOutName }

// NewMessage implements Message.
func (*BatteryVoltageOut) NewMessage() Message { return &BatteryVoltageOut{} }

// Result is the reply to a command.
type Result struct {
	Command string `protobuf:"bytes,1,opt,name=command,proto3" json:"command,omitempty"`
	Ok      bool   `protobuf:"varint,2,opt,name=ok,proto3" json:"ok,omitempty"`
	Error   string `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *Result) Reset()         { *m = Result{} }
func (m *Result) String() string { return proto.CompactTextString(m) }
func (*Result) ProtoMessage()    {}

// MessageName implements Message.
func (*Result) MessageName() string { return ResultName }

// NewMessage implements Message.
func (*Result) NewMessage() Message { return &Result{} }
