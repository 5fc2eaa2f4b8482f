package environment

// Step names one indivisible unit of work within a command. The handler
// must pair a step failure with the exact step it was executing when the
// error first occurred — never reverse-engineered from the error (P7).
type Step interface{ String() string }

// ProvisionStep enumerates the 9 ordered steps of the Provision command.
type ProvisionStep string

const (
	ProvisionStepRenderProvisionerTemplates ProvisionStep = "render_provisioner_templates"
	ProvisionStepInitProvisioner            ProvisionStep = "init_provisioner"
	ProvisionStepValidateProvisioner        ProvisionStep = "validate_provisioner"
	ProvisionStepPlan                       ProvisionStep = "plan"
	ProvisionStepApply                      ProvisionStep = "apply"
	ProvisionStepFetchInstanceInfo          ProvisionStep = "fetch_instance_info"
	ProvisionStepRenderConfigTemplates      ProvisionStep = "render_config_templates"
	ProvisionStepWaitSSH                    ProvisionStep = "wait_ssh"
	ProvisionStepWaitCloudInit              ProvisionStep = "wait_cloud_init"
)

func (s ProvisionStep) String() string { return string(s) }

// ConfigureStep enumerates the steps of the Configure command.
type ConfigureStep string

const (
	ConfigureStepInstallContainerRuntime ConfigureStep = "install_container_runtime"
	ConfigureStepInstallContainerCompose ConfigureStep = "install_container_compose"
)

func (s ConfigureStep) String() string { return string(s) }

// ReleaseStep enumerates the gated substeps of the Release command, in the
// fixed order §4.2.4 specifies within each gate.
type ReleaseStep string

const (
	ReleaseStepRenderComposeArtifacts    ReleaseStep = "render_compose_artifacts"
	ReleaseStepCreateTrackerStorage      ReleaseStep = "create_tracker_storage"
	ReleaseStepInitTrackerDatabase       ReleaseStep = "init_tracker_database"
	ReleaseStepRenderTrackerConfig       ReleaseStep = "render_tracker_config"
	ReleaseStepDeployTrackerConfig       ReleaseStep = "deploy_tracker_config"
	ReleaseStepDeployComposeFiles        ReleaseStep = "deploy_compose_files"
	ReleaseStepCreateMySQLStorage        ReleaseStep = "create_mysql_storage"
	ReleaseStepCreatePrometheusStorage   ReleaseStep = "create_prometheus_storage"
	ReleaseStepRenderPrometheusConfig    ReleaseStep = "render_prometheus_config"
	ReleaseStepDeployPrometheusConfig    ReleaseStep = "deploy_prometheus_config"
	ReleaseStepCreateGrafanaStorage      ReleaseStep = "create_grafana_storage"
	ReleaseStepRenderGrafanaProvisioning ReleaseStep = "render_grafana_provisioning"
	ReleaseStepDeployGrafanaProvisioning ReleaseStep = "deploy_grafana_provisioning"
	ReleaseStepRenderReverseProxyConfig  ReleaseStep = "render_reverse_proxy_config"
	ReleaseStepDeployReverseProxyConfig  ReleaseStep = "deploy_reverse_proxy_config"
	ReleaseStepRenderBackupTemplates     ReleaseStep = "render_backup_templates"
	ReleaseStepCreateBackupStorage       ReleaseStep = "create_backup_storage"
	ReleaseStepDeployBackupConfig        ReleaseStep = "deploy_backup_config"
)

func (s ReleaseStep) String() string { return string(s) }

// RunStep enumerates the steps of the Run command.
type RunStep string

const RunStepStartComposeStack RunStep = "start_compose_stack"

func (s RunStep) String() string { return string(s) }

// DestroyStep enumerates the steps of the Destroy command.
type DestroyStep string

const (
	DestroyStepDestroyInfrastructure DestroyStep = "destroy_infrastructure"
	DestroyStepRemoveLocalState      DestroyStep = "remove_local_state"
)

func (s DestroyStep) String() string { return string(s) }
