package state

import (
	"reflect"
	"sync"
	"testing"

	"github.com/five82/composer/internal/site"
	"github.com/five82/composer/internal/theme"
)

func newStore() *Store {
	return New(Options{Presets: theme.Presets{}})
}

func TestNew_DefaultsAndInitial(t *testing.T) {
	s := New(Options{})
	if !reflect.DeepEqual(s.Document(), site.DefaultDocument()) {
		t.Fatalf("New without Initial should use the default document")
	}

	initial := site.DefaultDocument()
	initial.Logo = "seed.png"
	s = New(Options{Initial: &initial})
	initial.Logo = "changed.png"
	if got := s.Logo(); got != "seed.png" {
		t.Fatalf("Logo = %q, want seed.png (Initial must be copied)", got)
	}
	if s.CanUndo() || s.CanRedo() || s.IsUnsaved() {
		t.Fatalf("fresh store should have empty history")
	}
}

func TestStore_ApplyThemeIsOneUndoStep(t *testing.T) {
	s := newStore()
	if !s.ApplyTheme("Ocean") {
		t.Fatalf("ApplyTheme(Ocean) = false, want true")
	}
	if !s.ApplyTheme("Modern") {
		t.Fatalf("ApplyTheme(Modern) = false, want true")
	}
	snap := s.Snapshot()
	if snap.ChangesSinceSave != 2 || snap.UndoDepth != 2 {
		t.Fatalf("ChangesSinceSave=%d UndoDepth=%d, want 2 and 2", snap.ChangesSinceSave, snap.UndoDepth)
	}

	s.Undo()
	ocean, _ := theme.Get("Ocean")
	if got := s.Colors(); got != ocean.Colors {
		t.Fatalf("after undo Colors = %#v, want Ocean %#v", got, ocean.Colors)
	}
	if got := s.ThemeName(); got != "Ocean" {
		t.Fatalf("after undo ThemeName = %q, want Ocean", got)
	}
	if got := s.Snapshot().ChangesSinceSave; got != 1 {
		t.Fatalf("ChangesSinceSave = %d, want 1", got)
	}
}

func TestStore_ApplyThemeUnknown(t *testing.T) {
	s := newStore()
	if s.ApplyTheme("Neon") {
		t.Fatalf("ApplyTheme(Neon) = true, want false")
	}
	if s.CanUndo() || s.IsUnsaved() {
		t.Fatalf("unknown theme should not record a change")
	}

	bare := New(Options{})
	if bare.ApplyTheme("Modern") {
		t.Fatalf("ApplyTheme without presets = true, want false")
	}
}

func TestStore_SetColorsClearsThemeName(t *testing.T) {
	s := newStore()
	modern, _ := theme.Get("Modern")

	s.SetColors(modern.Colors)
	if got := s.ThemeName(); got != "Modern" {
		t.Fatalf("ThemeName = %q after setting matching colors, want Modern", got)
	}

	s.UpdateColors(func(c site.Colors) site.Colors {
		c.Primary = "#000000"
		return c
	})
	if got := s.ThemeName(); got != "" {
		t.Fatalf("ThemeName = %q after custom color, want empty", got)
	}
	if got := s.Colors(); got.Primary != "#000000" || got.Secondary != modern.Colors.Secondary {
		t.Fatalf("Colors = %#v, want primary replaced only", got)
	}
}

func TestStore_AddThenDeletePage(t *testing.T) {
	s := newStore()
	before := s.Document()

	s.AddPage("benefits-page", "Benefits", []site.SectionID{site.SectionBenefits, site.SectionFooter})
	doc := s.Document()
	if got := doc.Pages["benefits-page"]; !reflect.DeepEqual(got, []site.SectionID{site.SectionBenefits, site.SectionFooter}) {
		t.Fatalf("Pages[benefits-page] = %v", got)
	}
	if doc.PageLabels["benefits-page"] != "Benefits" || doc.ActivePage != "benefits-page" {
		t.Fatalf("label=%q active=%q, want Benefits and benefits-page", doc.PageLabels["benefits-page"], doc.ActivePage)
	}

	s.DeletePage("benefits-page")
	doc = s.Document()
	if doc.HasPage("benefits-page") {
		t.Fatalf("page still present after delete")
	}
	if _, ok := doc.PageLabels["benefits-page"]; ok {
		t.Fatalf("label still present after delete")
	}
	if doc.ActivePage != site.HomePage {
		t.Fatalf("ActivePage = %q, want home", doc.ActivePage)
	}
	if !reflect.DeepEqual(doc.Pages, before.Pages) {
		t.Fatalf("Pages = %v, want %v", doc.Pages, before.Pages)
	}
	if got := s.Snapshot().ChangesSinceSave; got != 2 {
		t.Fatalf("ChangesSinceSave = %d, want 2", got)
	}
}

func TestStore_DeleteInactivePageKeepsActive(t *testing.T) {
	s := newStore()
	s.AddPage("careers", "Careers", nil)
	s.AddPage("team", "Team", nil)
	s.DeletePage("careers")
	if got := s.ActivePage(); got != "team" {
		t.Fatalf("ActivePage = %q, want team", got)
	}
	if got := s.Pages()["team"]; got == nil || len(got) != 0 {
		t.Fatalf("Pages[team] = %#v, want empty non-nil", got)
	}
}

func TestStore_LayoutWritesRecomputeGradient(t *testing.T) {
	s := newStore()
	s.UpdateLayout(func(l site.Layout) site.Layout {
		l.HeroGradientAngle = 90
		return l
	})
	l := s.Layout()
	if want := "linear-gradient(90deg, #2563eb 0%, #7c3aed 100%)"; l.HeroGradient != want {
		t.Fatalf("HeroGradient = %q, want %q", l.HeroGradient, want)
	}

	s.SetHeroGradient(site.GradientRadial, 0, []site.GradientStop{
		{Color: "#fff", Position: 100},
		{Color: "#000", Position: 0},
	})
	l = s.Layout()
	if want := "radial-gradient(circle, #000 0%, #fff 100%)"; l.HeroGradient != want {
		t.Fatalf("HeroGradient = %q, want %q", l.HeroGradient, want)
	}
	if l.HeroGradientStops[0].Color != "#fff" {
		t.Fatalf("stops were reordered in the stored layout: %#v", l.HeroGradientStops)
	}
}

func TestStore_SettersAreSingleSteps(t *testing.T) {
	s := newStore()
	s.SetLogo("logo.svg")
	s.SetTypography(site.Typography{HeadingFont: "Lora", BodyFont: "Inter", FontScale: site.FontScaleLarge})
	s.SetButtons(site.Buttons{Style: site.ButtonPill, Radius: 999})
	s.SetNavigation(site.Navigation{Enabled: false, Style: site.NavSidebar})
	s.SetMultiPageLayout(true)
	s.SetSinglePageSectionOrder([]site.SectionID{site.SectionFooter, site.SectionHero})
	s.SetPages(map[string][]site.SectionID{site.HomePage: {site.SectionHero, site.SectionFooter}})
	s.SetSectionSettings(site.SectionSettings{About: &site.AboutSettings{Title: "About us"}})
	s.SetActivePage("nowhere")

	snap := s.Snapshot()
	if snap.ChangesSinceSave != 9 {
		t.Fatalf("ChangesSinceSave = %d, want 9", snap.ChangesSinceSave)
	}
	doc := snap.Document
	if doc.Logo != "logo.svg" || doc.Typography.HeadingFont != "Lora" || doc.Buttons.Style != site.ButtonPill {
		t.Fatalf("field writes not applied: %#v", doc)
	}
	if doc.Navigation.Style != site.NavSidebar || !doc.MultiPageLayout {
		t.Fatalf("navigation/multi-page not applied: %#v %v", doc.Navigation, doc.MultiPageLayout)
	}
	if !reflect.DeepEqual(doc.SinglePageSectionOrder, []site.SectionID{site.SectionFooter, site.SectionHero}) {
		t.Fatalf("SinglePageSectionOrder = %v", doc.SinglePageSectionOrder)
	}
	if doc.SectionSettings.About == nil || doc.SectionSettings.Hero == nil {
		t.Fatalf("SectionSettings should merge per key: %#v", doc.SectionSettings)
	}
	if doc.ActivePage != "nowhere" {
		t.Fatalf("ActivePage = %q, want unchecked value", doc.ActivePage)
	}

	for i := 0; i < 9; i++ {
		s.Undo()
	}
	if !reflect.DeepEqual(s.Document(), site.DefaultDocument()) {
		t.Fatalf("undoing every setter should restore the default document")
	}
}

func TestStore_UpdaterReceivesCopy(t *testing.T) {
	s := newStore()
	s.UpdatePages(func(prev map[string][]site.SectionID) map[string][]site.SectionID {
		prev[site.HomePage][0] = site.SectionContact
		return prev
	})
	s.Undo()
	if got := s.Pages()[site.HomePage][0]; got != site.SectionHero {
		t.Fatalf("undo state corrupted through updater argument: %q", got)
	}
}

func TestStore_ModifyEmptyPatchIsSkipped(t *testing.T) {
	s := newStore()
	calls := 0
	s.Subscribe(func(Change) { calls++ })
	s.Modify(func(site.Document) site.Patch { return site.Patch{} })
	if s.CanUndo() || calls != 0 {
		t.Fatalf("empty patch recorded a step (undo=%v, notifications=%d)", s.CanUndo(), calls)
	}
}

func TestStore_ApplyChangeDirect(t *testing.T) {
	s := newStore()
	s.ApplyChangeDirect(site.Patch{Logo: site.Ptr("draft.png")})
	if s.Logo() != "draft.png" {
		t.Fatalf("Logo = %q, want draft.png", s.Logo())
	}
	if s.CanUndo() || s.IsUnsaved() {
		t.Fatalf("direct change touched history")
	}
}

func TestStore_SnapshotIndependence(t *testing.T) {
	s := newStore()
	snap := s.Snapshot()
	snap.Document.Pages[site.HomePage][0] = site.SectionJobs
	snap.Document.Layout.HeroGradientStops[0].Color = "#badbad"
	snap.Document.SectionSettings.Benefits.Items[0].Title = "mutated"

	doc := s.Document()
	if doc.Pages[site.HomePage][0] != site.SectionHero ||
		doc.Layout.HeroGradientStops[0].Color == "#badbad" ||
		doc.SectionSettings.Benefits.Items[0].Title == "mutated" {
		t.Fatalf("Snapshot shares structure with the store")
	}

	pages := s.Pages()
	pages["extra"] = nil
	if s.Document().HasPage("extra") {
		t.Fatalf("Pages() shares the map with the store")
	}
}

func TestStore_SaveAndPublish(t *testing.T) {
	s := newStore()
	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	s.SetLogo("a.png")
	s.Save()
	if s.IsUnsaved() {
		t.Fatalf("IsUnsaved after Save")
	}
	if s.TakePublish() {
		t.Fatalf("TakePublish after Save = true, want false")
	}
	if len(changes) != 1 {
		t.Fatalf("notifications = %d, want 1 (save does not notify)", len(changes))
	}

	s.Publish()
	if len(changes) != 2 || !changes[1].Publish || changes[1].Document.Logo != "a.png" {
		t.Fatalf("publish notification = %#v", changes)
	}
	if !s.TakePublish() {
		t.Fatalf("TakePublish after Publish = false, want true")
	}
	if s.TakePublish() {
		t.Fatalf("TakePublish should be one-shot")
	}
	if snap := s.Snapshot(); snap.LastSaved == nil || snap.LastSaved.Logo != "a.png" {
		t.Fatalf("LastSaved = %#v", snap.LastSaved)
	}
}

func TestStore_SubscribeNotifications(t *testing.T) {
	s := newStore()
	var got []string
	unsubscribe := s.Subscribe(func(c Change) {
		// Listeners run without the lock held.
		got = append(got, s.Logo()+"|"+c.Document.Logo)
	})

	s.Undo() // empty: no notification
	s.SetLogo("one")
	s.Undo()
	s.Redo()
	s.Redo() // empty: no notification
	unsubscribe()
	s.SetLogo("two")

	want := []string{"one|one", "|", "one|one"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("notifications = %q, want %q", got, want)
	}
}

func TestStore_ListenersGetOwnCopies(t *testing.T) {
	s := newStore()
	var second site.Document
	s.Subscribe(func(c Change) { c.Document.Pages[site.HomePage][0] = site.SectionJobs })
	s.Subscribe(func(c Change) { second = c.Document })
	s.SetLogo("x")
	if second.Pages[site.HomePage][0] != site.SectionHero {
		t.Fatalf("listeners share one document copy")
	}
}

func TestStore_ReadOnly(t *testing.T) {
	s := New(Options{Presets: theme.Presets{}, ReadOnly: true})
	calls := 0
	s.Subscribe(func(Change) { calls++ })

	s.SetLogo("x")
	s.AddPage("p", "P", nil)
	s.ApplyChangeDirect(site.Patch{Logo: site.Ptr("y")})
	s.Publish()
	if s.ApplyTheme("Ocean") {
		t.Fatalf("ApplyTheme in read-only mode = true")
	}

	if !reflect.DeepEqual(s.Document(), site.DefaultDocument()) {
		t.Fatalf("read-only store was modified")
	}
	if calls != 0 || s.TakePublish() || !s.Snapshot().ReadOnly {
		t.Fatalf("read-only store notified=%d", calls)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := newStore()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				s.UpdateLayout(func(l site.Layout) site.Layout {
					l.HeroGradientAngle = i*100 + j
					return l
				})
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()

	if got := s.Snapshot().ChangesSinceSave; got != 100 {
		t.Fatalf("ChangesSinceSave = %d, want 100", got)
	}
	if got := s.Snapshot().UndoDepth; got != 50 {
		t.Fatalf("UndoDepth = %d, want 50", got)
	}
}

func TestStore_TakeSnapshotCarriesPublish(t *testing.T) {
	s := newStore()
	if snap := s.TakeSnapshot(); snap.PublishPending {
		t.Fatalf("PublishPending on a fresh store")
	}

	s.ApplyTheme("Ocean")
	s.Publish()
	s.SetLogo("draft.svg")

	snap := s.TakeSnapshot()
	if !snap.PublishPending {
		t.Fatalf("PublishPending = false after Publish")
	}
	if snap.LastSaved == nil || snap.LastSaved.ThemeName != "Ocean" || snap.LastSaved.Logo == "draft.svg" {
		t.Fatalf("LastSaved = %#v, want the published Ocean document", snap.LastSaved)
	}
	if s.TakeSnapshot().PublishPending || s.TakePublish() {
		t.Fatalf("TakeSnapshot should clear the publish flag")
	}
	if s.Snapshot().PublishPending {
		t.Fatalf("Snapshot should never report PublishPending")
	}
}

func TestStore_RawLayoutPatchResyncsGradient(t *testing.T) {
	s := newStore()

	p := site.Patch{Layout: &site.LayoutPatch{HeroGradientAngle: site.Ptr(90)}}
	s.ApplyChange(p)
	l := s.Document().Layout
	if want := "linear-gradient(90deg, #2563eb 0%, #7c3aed 100%)"; l.HeroGradient != want {
		t.Fatalf("HeroGradient = %q, want %q", l.HeroGradient, want)
	}
	if p.Layout.HeroGradient != nil {
		t.Fatalf("caller's patch was modified")
	}
	if !s.CanUndo() {
		t.Fatalf("ApplyChange should record an undo step")
	}

	s.ApplyChangeDirect(site.Patch{Layout: &site.LayoutPatch{
		HeroGradientStops: []site.GradientStop{{Color: "#000", Position: 0}, {Color: "#fff", Position: 100}},
	}})
	l = s.Document().Layout
	if want := "linear-gradient(90deg, #000 0%, #fff 100%)"; l.HeroGradient != want {
		t.Fatalf("HeroGradient after direct = %q, want %q", l.HeroGradient, want)
	}

	s.ApplyChange(site.Patch{Layout: &site.LayoutPatch{
		HeroGradientAngle: site.Ptr(10),
		HeroGradient:      site.Ptr("none"),
	}})
	if got := s.Document().Layout.HeroGradient; got != "none" {
		t.Fatalf("explicit HeroGradient = %q, want none", got)
	}
}
