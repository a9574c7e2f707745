// ABOUTME: Interactive simulator REPL over the adapter and an in-memory widget
// ABOUTME: Replays gestures and prints the outward region-change callback stream

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/mapbridge/internal/adapter"
	"github.com/harper/mapbridge/internal/geoloc"
	"github.com/harper/mapbridge/internal/locate"
	"github.com/harper/mapbridge/internal/models"
	"github.com/harper/mapbridge/internal/ui"
	"github.com/harper/mapbridge/internal/widget"
)

var (
	runLat      float64
	runLng      float64
	runLatDelta float64
	runLngDelta float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive simulated map session",
	RunE: func(cmd *cobra.Command, args []string) error {
		region := cfg.GetRegion()
		if cmd.Flags().Changed("lat") {
			region = models.Region{
				Latitude:       runLat,
				Longitude:      runLng,
				LatitudeDelta:  runLatDelta,
				LongitudeDelta: runLngDelta,
			}
		}
		if err := models.ValidateRegion(region); err != nil {
			return fmt.Errorf("invalid starting region: %w", err)
		}

		sim := widget.NewSim(nil)
		walker := geoloc.NewSim(walkFrom(region.Center()), 4)

		a := adapter.New(sim, walker, adapter.Options{
			InitialRegion:         &region,
			MapType:               cfg.GetMapType(),
			ShowsUserLocation:     true,
			ShowsMyLocationButton: true,
			OnMapReady: func() {
				fmt.Println(color.GreenString("map ready"))
			},
			OnRegionChange: func(r models.Region, d adapter.ChangeDetail) {
				fmt.Println(ui.FormatChange("onRegionChange", r))
			},
			OnRegionChangeComplete: func(r models.Region, d adapter.ChangeDetail) {
				fmt.Println(ui.FormatChange("onRegionChangeComplete", r))
			},
		})
		defer a.Close()

		fmt.Printf("starting region %s\n", ui.FormatRegion(region))
		fmt.Println(color.New(color.Faint).Sprint(`type "load" to bring the widget up, "help" for commands`))

		return repl(a, sim, walker)
	},
}

func init() {
	runCmd.Flags().Float64Var(&runLat, "lat", 0, "starting center latitude")
	runCmd.Flags().Float64Var(&runLng, "lng", 0, "starting center longitude")
	runCmd.Flags().Float64Var(&runLatDelta, "lat-delta", 0.1, "starting latitude span")
	runCmd.Flags().Float64Var(&runLngDelta, "lng-delta", 0.1, "starting longitude span")
	rootCmd.AddCommand(runCmd)
}

// walkFrom builds a small walking loop near the starting viewport for the
// simulated locator.
func walkFrom(start models.LatLng) []models.LatLng {
	return []models.LatLng{
		start,
		{Lat: start.Lat + 0.004, Lng: start.Lng + 0.002},
		{Lat: start.Lat + 0.006, Lng: start.Lng + 0.008},
		{Lat: start.Lat + 0.002, Lng: start.Lng + 0.012},
	}
}

const replHelp = `commands:
  load                         bring the widget up (fires load + startup idle)
  region <lat> <lng> <dlat> <dlng>   apply an external region
  drag <dlat> <dlng>           drag gesture (widget moves itself first)
  zoom <level>                 zoom gesture
  settle                       idle event (viewport stopped moving)
  camera                       print the imperative camera
  move <lat> <lng> [zoom]      setCamera
  pan <lat> <lng>              animateToRegion (pan only)
  walk                         advance the simulated user location one step
  press                        press the locate-me control
  status                       region, camera, marker count
  quit`

func repl(a *adapter.Adapter, sim *widget.Sim, walker *geoloc.Sim) error {
	scanner := bufio.NewScanner(os.Stdin)
	prompt := color.New(color.FgCyan).Sprint("mapbridge> ")
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Println(replHelp)
		case "load":
			sim.Load()
		case "region":
			nums, err := parseFloats(fields[1:], 4)
			if err != nil {
				fmt.Println(color.RedString("usage: region <lat> <lng> <dlat> <dlng>"))
				continue
			}
			r := models.Region{Latitude: nums[0], Longitude: nums[1], LatitudeDelta: nums[2], LongitudeDelta: nums[3]}
			if err := models.ValidateRegion(r); err != nil {
				fmt.Println(color.RedString(err.Error()))
				continue
			}
			a.SetRegion(r)
			fmt.Printf("region applied %s\n", ui.FormatRegion(a.CurrentRegion()))
		case "drag":
			nums, err := parseFloats(fields[1:], 2)
			if err != nil {
				fmt.Println(color.RedString("usage: drag <dlat> <dlng>"))
				continue
			}
			sim.DragBy(nums[0], nums[1])
		case "zoom":
			nums, err := parseFloats(fields[1:], 1)
			if err != nil {
				fmt.Println(color.RedString("usage: zoom <level>"))
				continue
			}
			sim.ZoomTo(nums[0])
		case "settle":
			sim.Settle()
		case "camera":
			fmt.Println(ui.FormatCamera(a.Handle().GetCamera()))
		case "move":
			nums, err := parseFloats(fields[1:], 2)
			if err != nil {
				fmt.Println(color.RedString("usage: move <lat> <lng> [zoom]"))
				continue
			}
			update := models.CameraUpdate{Center: &models.LatLng{Lat: nums[0], Lng: nums[1]}}
			if len(fields) > 3 {
				z, err := strconv.ParseFloat(fields[3], 64)
				if err != nil {
					fmt.Println(color.RedString("usage: move <lat> <lng> [zoom]"))
					continue
				}
				update.Zoom = &z
			}
			a.Handle().SetCamera(update)
			fmt.Println(ui.FormatCamera(a.Handle().GetCamera()))
		case "pan":
			nums, err := parseFloats(fields[1:], 2)
			if err != nil {
				fmt.Println(color.RedString("usage: pan <lat> <lng>"))
				continue
			}
			a.Handle().AnimateToRegion(models.Region{
				Latitude: nums[0], Longitude: nums[1],
				LatitudeDelta: 1, LongitudeDelta: 1,
			})
			fmt.Println(ui.FormatCamera(a.Handle().GetCamera()))
		case "walk":
			before := walker.Position()
			walker.Advance()
			after := walker.Position()
			fmt.Printf("walked %s %s\n",
				ui.FormatLatLng(after),
				color.New(color.Faint).Sprintf("(+%.0fm)", geoloc.Distance(before, after)))
		case "press":
			if !sim.PressControl(locate.ButtonLabel) {
				fmt.Println(color.New(color.Faint).Sprint("locate-me control absent or disabled"))
			}
		case "status":
			fmt.Printf("region  %s\n", ui.FormatRegion(a.CurrentRegion()))
			fmt.Printf("camera  %s\n", ui.FormatCamera(a.Handle().GetCamera()))
			fmt.Printf("markers %d\n", sim.MarkerCount())
		default:
			fmt.Println(color.RedString("unknown command %q (try help)", fields[0]))
		}
	}
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) < n {
		return nil, fmt.Errorf("expected %d numbers", n)
	}
	nums := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", args[i])
		}
		nums[i] = v
	}
	return nums, nil
}
