package consul

import (
	"fmt"
	"strconv"

	"sos-service/config"

	consulapi "github.com/hashicorp/consul/api"
	"go.uber.org/zap"
)

type ConsulConn struct {
	logger    *zap.SugaredLogger
	cfg       *config.Config
	client    *consulapi.Client
	serviceID string
}

func NewConsulConn(logger *zap.SugaredLogger, cfg *config.Config) *ConsulConn {
	return &ConsulConn{
		logger:    logger,
		cfg:       cfg,
		serviceID: fmt.Sprintf("%s-%s-%s", cfg.Consul.ServiceName, cfg.Consul.ServiceHost, cfg.Port),
	}
}

// Connect registers the service with an HTTP health check against /health.
func (c *ConsulConn) Connect() (*consulapi.Client, error) {
	consulCfg := consulapi.DefaultConfig()
	consulCfg.Address = c.cfg.Consul.Address

	client, err := consulapi.NewClient(consulCfg)
	if err != nil {
		return nil, fmt.Errorf("consul client: %w", err)
	}

	port, err := strconv.Atoi(c.cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", c.cfg.Port, err)
	}

	registration := c.registration(port)
	if err := client.Agent().ServiceRegister(registration); err != nil {
		return nil, fmt.Errorf("consul register: %w", err)
	}

	c.client = client
	c.logger.Infof("Registered %s in consul as %s", c.cfg.Consul.ServiceName, c.serviceID)
	return client, nil
}

func (c *ConsulConn) registration(port int) *consulapi.AgentServiceRegistration {
	return &consulapi.AgentServiceRegistration{
		ID:      c.serviceID,
		Name:    c.cfg.Consul.ServiceName,
		Address: c.cfg.Consul.ServiceHost,
		Port:    port,
		Tags:    []string{"sos", "http"},
		Check: &consulapi.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", c.cfg.Consul.ServiceHost, port),
			Interval:                       "10s",
			Timeout:                        "2s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}
}

func (c *ConsulConn) Deregister() {
	if c.client == nil {
		return
	}
	if err := c.client.Agent().ServiceDeregister(c.serviceID); err != nil {
		c.logger.Errorf("Failed to deregister %s: %v", c.serviceID, err)
		return
	}
	c.logger.Infof("Deregistered %s from consul", c.serviceID)
}
