package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/BrandishPet_Go/internal/domain"
	"github.com/osse101/BrandishPet_Go/internal/pet"
)

var titleCase = cases.Title(language.English)

// title renders identifiers such as "squeaky_ball" as "Squeaky Ball"
func title(s string) string {
	return titleCase.String(strings.ReplaceAll(s, "_", " "))
}

func printStatus(w io.Writer, st pet.Status) {
	prog := st.Progression
	fmt.Fprintf(w, "🐾 %s the %s (%s)\n", st.EntityID, title(string(prog.Stage)), st.MoodLabel)
	fmt.Fprintf(w, "XP: %d", prog.XP)
	if prog.XPToNext > 0 {
		fmt.Fprintf(w, " (%d to next stage)", prog.XPToNext)
	}
	fmt.Fprintf(w, "  Age: %d days\n\n", prog.AgeDays)

	m := st.Mood
	printBar(w, "Happiness", m.Happiness)
	printBar(w, "Health", m.Health)
	printBar(w, "Energy", m.Energy)
	printBar(w, "Hunger", m.Hunger)
	printBar(w, "Cleanliness", m.Cleanliness)
	printBar(w, "Affection", m.Affection)

	fmt.Fprintf(w, "\nCoins: %d (earned %d)\n", st.Wallet.Balance, st.Wallet.TotalEarned)
	if st.CanClaim {
		fmt.Fprintln(w, "Daily reward: ready")
	} else {
		fmt.Fprintf(w, "Daily reward: in %s\n", st.NextClaimIn.Round(time.Minute))
	}

	if len(st.Inventory) > 0 {
		fmt.Fprintln(w, "\nInventory:")
		for _, it := range st.Inventory {
			mark := ""
			if it.Equipped {
				mark = " (equipped)"
			}
			fmt.Fprintf(w, "  - %s x%d%s\n", title(it.ItemID), it.Quantity, mark)
		}
	}

	fmt.Fprintf(w, "\nFeatures: %s\n", strings.Join(prog.UnlockedFeatures, ", "))
	fmt.Fprintf(w, "Rooms: %s\n", strings.Join(prog.UnlockedRooms, ", "))
}

// printBar draws a 0..100 stat as a ten-cell bar
func printBar(w io.Writer, name string, value float64) {
	filled := int(value / 10)
	filled = max(0, min(10, filled))
	fmt.Fprintf(w, "%-12s %s%s %5.1f\n", name, strings.Repeat("█", filled), strings.Repeat("░", 10-filled), value)
}

func printOutcome(w io.Writer, out *pet.ActionOutcome) {
	if !out.Accepted {
		fmt.Fprintf(w, "🚫 %s\n", out.Message)
		return
	}
	fmt.Fprintf(w, "✅ %s (+%d XP, feeling %s)\n", out.Message, out.XP, out.Mood)
	if out.Award != nil {
		printAward(w, out.Award)
	}
}

func printAward(w io.Writer, award *domain.XPAwardResult) {
	if award.BonusCoins > 0 {
		fmt.Fprintf(w, "💰 +%d bonus coins\n", award.BonusCoins)
	}
	if !award.Evolved {
		return
	}
	fmt.Fprintf(w, "🎉 Evolved from %s to %s!\n", title(string(award.OldStage)), title(string(award.NewStage)))
	for _, f := range award.NewFeatures {
		fmt.Fprintf(w, "  unlocked feature: %s\n", title(f))
	}
	for _, r := range award.NewRooms {
		fmt.Fprintf(w, "  unlocked room: %s\n", title(r))
	}
}

func printShop(w io.Writer, items []domain.Item) {
	for _, it := range items {
		extra := ""
		if it.Equippable {
			extra = " [equippable]"
		}
		fmt.Fprintf(w, "%-14s %-10s %4d coins  %s%s\n", it.ID, it.Category, it.Price, it.Name, extra)
	}
}
