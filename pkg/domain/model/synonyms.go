// 指示: miu200521358
package model

import "strings"

// 各関節グループの認識用部分文字列。外部の自動バインド照合側が参照する読み取り専用表で、
// リターゲット計算そのものは参照しない。
var (
	// ThumbNameSynonyms は親指の認識用部分文字列。
	ThumbNameSynonyms = []string{"thumb"}
	// IndexNameSynonyms は人差し指の認識用部分文字列。
	IndexNameSynonyms = []string{"index"}
	// MiddleNameSynonyms は中指の認識用部分文字列。
	MiddleNameSynonyms = []string{"middle"}
	// RingNameSynonyms は薬指の認識用部分文字列。
	RingNameSynonyms = []string{"ring"}
	// PinkyNameSynonyms は小指の認識用部分文字列。
	PinkyNameSynonyms = []string{"pinky", "little"}
	// WristNameSynonyms は手首の認識用部分文字列。
	WristNameSynonyms = []string{"wrist", "hand", "palm"}
	// ElbowNameSynonyms はひじの認識用部分文字列。
	ElbowNameSynonyms = []string{"elbow", "lowerArm", "forearm"}
)

// fingerSynonymsByKind は指種類ごとの認識用部分文字列表。
var fingerSynonymsByKind = [FingerCount][]string{
	ThumbNameSynonyms,
	IndexNameSynonyms,
	MiddleNameSynonyms,
	RingNameSynonyms,
	PinkyNameSynonyms,
}

// FingerNameSynonyms は指種類の認識用部分文字列を返す。
func FingerNameSynonyms(kind FingerKind) []string {
	if kind < 0 || int(kind) >= FingerCount {
		return nil
	}
	return fingerSynonymsByKind[kind]
}

// MatchesSynonyms は名称がいずれかの部分文字列を大文字小文字無視で含むか判定する。
func MatchesSynonyms(name string, synonyms []string) bool {
	lowered := strings.ToLower(name)
	for _, synonym := range synonyms {
		if strings.Contains(lowered, strings.ToLower(synonym)) {
			return true
		}
	}
	return false
}
