package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gogpu/gg"
	"github.com/matt-g-everett/anitx/ani"
	"github.com/matt-g-everett/anitx/api"
	"github.com/matt-g-everett/anitx/canvas"
	"github.com/matt-g-everett/anitx/demo"
	"github.com/matt-g-everett/anitx/lifetime"
	"github.com/matt-g-everett/anitx/scene"
	"github.com/matt-g-everett/anitx/stream"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type app struct {
	Config   stream.Config
	Logger   *slog.Logger
	Client   mqtt.Client
	Canvas   *canvas.Canvas
	Pulse    *ani.PulseSource
	Streamer *stream.Streamer
	Api      *api.Api
}

func newApp(config stream.Config, logger *slog.Logger) (*app, error) {
	a := new(app)
	a.Config = config
	a.Logger = logger

	background, err := canvas.Hex(config.Window.Background)
	if err != nil {
		return nil, err
	}
	var fonts *canvas.Fonts
	if config.Font.Path != "" {
		if fonts, err = canvas.LoadFonts(config.Font.Path); err != nil {
			return nil, err
		}
	}
	a.Canvas = canvas.New(config.Window.Width, config.Window.Height, background, fonts)
	a.Pulse = ani.NewPulseSource()
	return a, nil
}

func (a *app) connect() error {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			a.Logger.Info("connected", "broker", a.Config.Mqtt.URL)
		})
	a.Client = mqtt.NewClient(options)
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connect to %s: %w", a.Config.Mqtt.URL, token.Error())
	}
	return nil
}

func (a *app) newScene(life lifetime.Lifetime) *scene.Animation {
	w, h := a.Config.Window.Width, a.Config.Window.Height
	sc := a.Config.Scene
	a.Logger.Info("starting scene", "scene", sc.Name)
	switch sc.Name {
	case "twinkle":
		seed := sc.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return demo.Twinkle(w, h, sc.Stars, sc.Chance, rand.New(rand.NewSource(seed)), life)
	default:
		return demo.Orbit(w, h, a.Config.Font.Size, life)
	}
}

func (a *app) run(ctx context.Context) error {
	show := lifetime.NewSource()
	defer show.EndLifetime()

	animation := a.newScene(show.Lifetime())
	animation.Link(a.Canvas, a.Pulse, show.Lifetime())
	a.Streamer = stream.NewStreamer(a.Config, animation.StepActions, a.Pulse, a.Canvas, a.Logger)

	if a.Config.Mqtt.URL != "" {
		if err := a.connect(); err != nil {
			return err
		}
		defer a.Client.Disconnect(250)
		stream.NewPublisher(a.Config, a.Client, a.Logger).Attach(a.Streamer.Latest, show.Lifetime())
	}

	g, ctx := errgroup.WithContext(ctx)
	if a.Config.HTTP.Addr != "" {
		a.Api = api.NewApi(a.Streamer.Latest, a.Logger)
		g.Go(func() error {
			return a.Api.Serve(ctx, a.Config.HTTP.Addr)
		})
	}
	g.Go(func() error {
		return a.Streamer.Run(ctx, show.Lifetime())
	})
	return g.Wait()
}

func newRootCmd() *cobra.Command {
	var configPath string

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Animate the scene and stream its frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := stream.DefaultConfig()
			if configPath != "" {
				var err error
				if config, err = stream.LoadConfig(configPath); err != nil {
					return err
				}
			}

			logger, closer, err := newLogger(cmd.ErrOrStderr(), config.Log.Level, config.Log.File)
			if err != nil {
				return err
			}
			defer closer.Close()
			gg.SetLogger(logger)
			mqtt.ERROR = stdLogger(logger, slog.LevelError)
			logger.Debug("config", "config", config)

			a, err := newApp(config, logger)
			if err != nil {
				return err
			}
			return a.run(cmd.Context())
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default config to --config",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = "config.yaml"
			}
			if err := stream.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}

	rootCmd := &cobra.Command{
		Use:           "anitx",
		Short:         "Procedural vector animations, rendered headless and streamed",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCmd.RunE,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.AddCommand(runCmd, initCmd)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "anitx:", err)
		os.Exit(1)
	}
}
