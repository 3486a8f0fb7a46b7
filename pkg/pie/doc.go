// Package pie implements a radial context menu.
//
// A press-and-hold (or right click) on a [PieMenu] child attaches a ring of
// [PieAction] buttons to the shared [PieCanvas] around the pointer. While
// the press is held the child bounces, scaling toward
// [theme.PieTheme.ChildBounceFactor] and tilting toward the press point.
// Once the menu opens, an overlay fades in behind it.
//
// # Frame Loop
//
// Everything runs on the UI thread. Each frame the host:
//
//  1. routes pointer input to the canvas and to the menu under the pointer
//     (see [PieCanvas.HandlePointer] and [PieMenuState.HandlePointer]),
//  2. flushes rebuilds with [core.BuildOwner.FlushBuild],
//  3. steps animations and timers with [animation.StepTickers],
//  4. lays out each menu with [PieMenuState.Layout] and paints using
//     [PieMenuState.Transform], [PieMenuState.OverlayColor] and
//     [PieCanvas.ActionCenters],
//  5. runs post-frame callbacks with [core.BuildOwner.FlushPostFrameCallbacks].
//
// pkg/testing's MenuTester runs exactly this loop against a fake clock.
package pie
