// 指示: miu200521358
package routput

import "github.com/miu200521358/mu_hand_retarget/pkg/domain/model"

// ITransformSource はリグトランスフォームへの非所有参照契約を表す。
type ITransformSource = model.ITransformSource

// IHandRetargeter はバインドモデルからトラッキング骨格への転写契約を表す。
type IHandRetargeter interface {
	// Retarget は既定の指先スケールで転写する。
	Retarget(boundHand *model.BoundHand, hand *model.CanonicalHand) *model.CanonicalHand
	// RetargetWithScale は指先スケール指定で転写する。
	RetargetWithScale(boundHand *model.BoundHand, hand *model.CanonicalHand, fingertipScale float64) *model.CanonicalHand
}
