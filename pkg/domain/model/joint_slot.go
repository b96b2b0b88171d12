// 指示: miu200521358
package model

// FingerKind は指の種類を表す。
type FingerKind int

const (
	// FINGER_THUMB は親指。
	FINGER_THUMB FingerKind = iota
	// FINGER_INDEX は人差し指。
	FINGER_INDEX
	// FINGER_MIDDLE は中指。
	FINGER_MIDDLE
	// FINGER_RING は薬指。
	FINGER_RING
	// FINGER_PINKY は小指。
	FINGER_PINKY
)

// FingerCount は1手あたりの指数。
const FingerCount = 5

// String は指種類名を返す。
func (k FingerKind) String() string {
	switch k {
	case FINGER_THUMB:
		return "thumb"
	case FINGER_INDEX:
		return "index"
	case FINGER_MIDDLE:
		return "middle"
	case FINGER_RING:
		return "ring"
	case FINGER_PINKY:
		return "pinky"
	default:
		return "unknown"
	}
}

// FingerBoneKind は指内の骨の種類を表す。順序は中手骨→末節骨で固定。
type FingerBoneKind int

const (
	// BONE_METACARPAL は中手骨。
	BONE_METACARPAL FingerBoneKind = iota
	// BONE_PROXIMAL は基節骨。
	BONE_PROXIMAL
	// BONE_INTERMEDIATE は中節骨。
	BONE_INTERMEDIATE
	// BONE_DISTAL は末節骨。
	BONE_DISTAL
)

// FingerBoneCount は1指あたりの骨数。
const FingerBoneCount = 4

// String は骨種類名を返す。
func (k FingerBoneKind) String() string {
	switch k {
	case BONE_METACARPAL:
		return "metacarpal"
	case BONE_PROXIMAL:
		return "proximal"
	case BONE_INTERMEDIATE:
		return "intermediate"
	case BONE_DISTAL:
		return "distal"
	default:
		return "unknown"
	}
}

// JointSlot はバインド対象の関節スロットを表す。22スロットで固定。
type JointSlot int

const (
	JOINT_THUMB_METACARPAL JointSlot = iota
	JOINT_THUMB_PROXIMAL
	JOINT_THUMB_INTERMEDIATE
	JOINT_THUMB_DISTAL
	JOINT_INDEX_METACARPAL
	JOINT_INDEX_PROXIMAL
	JOINT_INDEX_INTERMEDIATE
	JOINT_INDEX_DISTAL
	JOINT_MIDDLE_METACARPAL
	JOINT_MIDDLE_PROXIMAL
	JOINT_MIDDLE_INTERMEDIATE
	JOINT_MIDDLE_DISTAL
	JOINT_RING_METACARPAL
	JOINT_RING_PROXIMAL
	JOINT_RING_INTERMEDIATE
	JOINT_RING_DISTAL
	JOINT_PINKY_METACARPAL
	JOINT_PINKY_PROXIMAL
	JOINT_PINKY_INTERMEDIATE
	JOINT_PINKY_DISTAL
	JOINT_WRIST
	JOINT_ELBOW
)

// JointSlotCount は関節スロット総数。
const JointSlotCount = 22

// fingerBoneEntry は関節スロットに対応する(指,骨)を保持する。
type fingerBoneEntry struct {
	Finger FingerKind
	Bone   FingerBoneKind
	Valid  bool
}

// fingerBoneBySlot は関節スロットから(指,骨)への静的対応表。
var fingerBoneBySlot = buildFingerBoneBySlot()

// buildFingerBoneBySlot は指骨20スロット分の対応表を構築する。
func buildFingerBoneBySlot() [JointSlotCount]fingerBoneEntry {
	var table [JointSlotCount]fingerBoneEntry
	for finger := 0; finger < FingerCount; finger++ {
		for bone := 0; bone < FingerBoneCount; bone++ {
			slot := JointSlot(finger*FingerBoneCount + bone)
			table[slot] = fingerBoneEntry{
				Finger: FingerKind(finger),
				Bone:   FingerBoneKind(bone),
				Valid:  true,
			}
		}
	}
	return table
}

// FingerBone は関節スロットに対応する(指,骨)を返す。手首・ひじはfalseを返す。
func (s JointSlot) FingerBone() (FingerKind, FingerBoneKind, bool) {
	if s < 0 || int(s) >= JointSlotCount {
		return 0, 0, false
	}
	entry := fingerBoneBySlot[s]
	return entry.Finger, entry.Bone, entry.Valid
}

// JointSlotFromFingerBone は(指,骨)から関節スロットを返す。
func JointSlotFromFingerBone(finger FingerKind, bone FingerBoneKind) (JointSlot, bool) {
	if finger < 0 || int(finger) >= FingerCount || bone < 0 || int(bone) >= FingerBoneCount {
		return 0, false
	}
	return JointSlot(int(finger)*FingerBoneCount + int(bone)), true
}

// String は関節スロット名を返す。
func (s JointSlot) String() string {
	switch s {
	case JOINT_WRIST:
		return "wrist"
	case JOINT_ELBOW:
		return "elbow"
	}
	finger, bone, ok := s.FingerBone()
	if !ok {
		return "unknown"
	}
	return finger.String() + "_" + bone.String()
}

// jointSlotByName は関節スロット名からの逆引き辞書。
var jointSlotByName = buildJointSlotByName()

// buildJointSlotByName は関節スロット名の逆引き辞書を構築する。
func buildJointSlotByName() map[string]JointSlot {
	byName := make(map[string]JointSlot, JointSlotCount)
	for slot := JointSlot(0); int(slot) < JointSlotCount; slot++ {
		byName[slot.String()] = slot
	}
	return byName
}

// ParseJointSlot は関節スロット名からスロットを解決する。
func ParseJointSlot(name string) (JointSlot, bool) {
	slot, exists := jointSlotByName[name]
	return slot, exists
}
